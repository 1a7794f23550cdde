package main

//
// main.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "gitlab.com/kabes/go-podcastr/internal/cli"

func main() {
	cli.Main()
}
