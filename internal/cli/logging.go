package cli

//
// logging.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"io"
	stdlog "log"
	"log/syslog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/journald"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"golang.org/x/term"
)

type logFormat string

const (
	logConsole  = logFormat("console")
	logLogfmt   = logFormat("logfmt")
	logJSON     = logFormat("json")
	logJournald = logFormat("journald")
	logSyslog   = logFormat("syslog")
)

//nolint:gochecknoglobals
var logFormats = []logFormat{logConsole, logLogfmt, logJSON, logJournald, logSyslog}

// machine readable outputs get application name and version in each entry.
func (f logFormat) structured() bool {
	return f == logJSON || f == logJournald || f == logSyslog
}

// parseLogFormat return known format or default one for output (console
// for terminal, logfmt otherwise). ok is false for unknown, not empty format.
func parseLogFormat(format string, console bool) (logFormat, bool) {
	lf := logFormat(strings.ToLower(strings.TrimSpace(format)))
	if lo.Contains(logFormats, lf) {
		return lf, true
	}

	def := logLogfmt
	if console {
		def = logConsole
	}

	return def, lf == ""
}

func initializeLogger(level, format string) error {
	zerolog.ErrorMarshalFunc = aerr.ErrorMarshalFunc //nolint:reassign

	console := outputIsConsole()
	bi := config.GetBuildInfo()

	lf, ok := parseLogFormat(format, console)

	writer, err := newLogWriter(lf, bi.App, console)
	if err != nil {
		return err
	}

	lctx := log.Output(writer).With().Timestamp().Caller()
	if lf.structured() {
		lctx = lctx.Str("app", bi.App).Str("version", bi.Version)
	}

	log.Logger = lctx.Logger()

	if !ok {
		log.Warn().Msgf("logger: unknown log format %q; using %s", format, lf)
	}

	lvl, err := zerolog.ParseLevel(strings.TrimSpace(level))
	if err != nil || level == "" {
		log.Warn().Msgf("logger: unknown log level %q; using debug", level)

		lvl = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(lvl)

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	return nil
}

func newLogWriter(format logFormat, app string, console bool) (io.Writer, error) {
	switch format {
	case logJSON:
		return os.Stderr, nil
	case logSyslog:
		w, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, app)
		if err != nil {
			return nil, fmt.Errorf("init syslog error: %w", err)
		}

		return zerolog.SyslogLevelWriter(w), nil
	case logJournald:
		return journald.NewJournalDWriter(), nil
	case logLogfmt:
		return newLogfmtWriter(os.Stderr), nil
	default:
		return newConsoleWriter(os.Stderr, console), nil
	}
}

func outputIsConsole() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// newConsoleWriter write human readable log; colors and short time only on terminal.
func newConsoleWriter(out io.Writer, console bool) zerolog.ConsoleWriter {
	tformat := time.RFC3339
	if console {
		tformat = time.TimeOnly
	}

	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        out,
		NoColor:    !console,
		TimeFormat: tformat,
	}
}

// newLogfmtWriter write every part of entry as key=value.
func newLogfmtWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:                 out,
		NoColor:             true,
		TimeFormat:          time.RFC3339,
		FormatTimestamp:     logfmtField("ts", ""),
		FormatLevel:         logfmtField("level", ""),
		FormatMessage:       logfmtField("msg", "<nil>"),
		FormatCaller:        logfmtField("caller", "UNKNOWN"),
		FormatErrFieldValue: logfmtField("", "<nil>"),
	}
}

// logfmtField return formatter printing `key=value`; value is quoted when
// contains spaces or quotes. nilValue is printed as is for missing values.
func logfmtField(key, nilValue string) zerolog.Formatter {
	return func(i any) string {
		if i == nil {
			return nilValue
		}

		value := fmt.Sprintf("%s", i)
		if key == "msg" || value == "" || strings.ContainsAny(value, " \"=") {
			value = strconv.Quote(value)
		}

		if key == "" {
			return value
		}

		return key + "=" + value
	}
}
