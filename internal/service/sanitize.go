package service

//
// sanitize.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/url"
	"strings"
)

// SanitizeURL return trimmed u when it is valid absolute http(s) url; otherwise empty string.
func SanitizeURL(u string) string {
	su := strings.TrimSpace(u)

	url, err := url.Parse(su)
	if err != nil || (url.Scheme != "http" && url.Scheme != "https") || url.Host == "" {
		return ""
	}

	return su
}
