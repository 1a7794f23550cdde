package aerr

//
// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// errorObject write all information from err chain into log event.
type errorObject struct {
	err error
}

func (o errorObject) MarshalZerologObject(event *zerolog.Event) {
	var (
		stack          []string
		userMsgs, tags []string
		meta           map[string]any
	)

	for ae := range appErrors(o.err) {
		if ae.userMsg != "" {
			userMsgs = append(userMsgs, ae.userMsg)
		}

		// the deepest stack is the most accurate
		if len(ae.stack) > 0 {
			stack = ae.stack
		}

		tags = append(tags, ae.tags...)

		if len(ae.meta) > 0 {
			if meta == nil {
				meta = make(map[string]any)
			}

			// outer errors override meta of inner
			for k, v := range ae.meta {
				if _, ok := meta[k]; !ok {
					meta[k] = v
				}
			}
		}
	}

	event.Strs("errors", describeChain(o.err))

	if len(userMsgs) > 0 {
		event.Strs("user_msg", lo.Uniq(userMsgs))
	}

	if len(tags) > 0 {
		event.Strs("tags", lo.Uniq(tags))
	}

	if meta != nil {
		event.Any("meta", meta)
	}

	if stack != nil {
		event.Strs("stack", stack)
	}
}

// ErrorMarshalFunc is installed as zerolog.ErrorMarshalFunc.
func ErrorMarshalFunc(err error) any {
	if err == nil {
		return nil
	}

	return errorObject{err}
}
