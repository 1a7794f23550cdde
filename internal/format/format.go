package format

//
// format.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitlab.com/kabes/go-podcastr/internal/aerr"
)

// Locale select language used for month names.
type Locale string

const (
	LocalePtBR = Locale("pt-BR")
	LocaleEn   = Locale("en")
)

//nolint:gochecknoglobals
var monthAbbr = map[Locale][12]string{
	LocalePtBR: {"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	LocaleEn:   {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

func ParseLocale(value string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pt-br", "pt_br", "pt":
		return LocalePtBR, nil
	case "en", "en-us", "en_us", "en-gb":
		return LocaleEn, nil
	}

	return "", aerr.ErrInvalidConf.WithUserMsg("unsupported locale %q", value)
}

// Date format t as "d MMM yy" (i.e. "8 jan 21") in UTC.
func Date(t time.Time, loc Locale) string {
	if t.IsZero() {
		return ""
	}

	months, ok := monthAbbr[loc]
	if !ok {
		months = monthAbbr[LocalePtBR]
	}

	t = t.UTC()

	return fmt.Sprintf("%d %s %02d", t.Day(), months[t.Month()-1], t.Year()%100) //nolint:mnd
}

// Duration format number of seconds as HH:MM:SS.
func Duration(seconds int) string {
	seconds = max(seconds, 0)

	hours := seconds / 3600          //nolint:mnd
	minutes := (seconds % 3600) / 60 //nolint:mnd
	secs := seconds % 60             //nolint:mnd

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// ParseDuration parse duration given as number of seconds or in form [[HH:]MM:]SS.
func ParseDuration(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f), nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 { //nolint:mnd
		return 0, aerr.ErrValidation.WithMsg("invalid duration %q", value)
	}

	total := 0

	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, aerr.ErrValidation.WithMsg("invalid duration %q", value)
		}

		total = total*60 + v //nolint:mnd
	}

	return total, nil
}
