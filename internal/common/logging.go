package common

//
// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

const (
	LogKeyEpisodeID = "episode_id"
	LogKeySessionID = "session_id"
	LogKeyPageKey   = "page_key"
	LogKeyAction    = "player_action"
	LogKeyTaskID    = "task_id"
)

const (
	LogKeyReqID           = "req_id"
	LogKeyRequestHeaders  = "req_headers"
	LogKeyResponseHeaders = "resp_headers"
)
