package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

// CustomHandler is a compact colorized console handler. Records carry a
// "type" attribute (cmd, db, sys) that becomes the tag in brackets.
type CustomHandler struct {
	opts      *slog.HandlerOptions
	startTime time.Time
	attrs     []slog.Attr
	groups    []string
}

func NewHandler() *CustomHandler {
	return &CustomHandler{
		opts:      &slog.HandlerOptions{Level: slog.LevelDebug},
		startTime: time.Now(),
		attrs:     make([]slog.Attr, 0),
		groups:    make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CustomHandler{
		opts:      h.opts,
		startTime: h.startTime,
		attrs:     append(h.attrs, attrs...),
		groups:    h.groups,
	}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	return &CustomHandler{
		opts:      h.opts,
		startTime: h.startTime,
		attrs:     h.attrs,
		groups:    append(h.groups, name),
	}
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	var levelColor, levelText string
	switch r.Level {
	case slog.LevelDebug:
		levelColor = colorPurple
		levelText = "DEBUG"
	case slog.LevelInfo:
		levelColor = colorGreen
		levelText = "INFO"
	case slog.LevelWarn:
		levelColor = colorYellow
		levelText = "WARN"
	default:
		levelColor = colorRed
		levelText = "ERROR"
	}

	logType := "SYS"
	var details []string
	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "type":
			logType = strings.ToUpper(a.Value.String())
		case "error":
			details = append(details, fmt.Sprintf("error=%s", a.Value.String()))
		default:
			details = append(details, fmt.Sprintf("%s=%s", a.Key, a.Value.String()))
		}
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	message := r.Message
	if len(details) > 0 {
		message = fmt.Sprintf("%s (%s)", message, strings.Join(details, " "))
	}

	fmt.Printf("%s%s%s [%s%s%s] %s%s%s +%dms\n",
		colorCyan, time.Now().Format("15:04:05"), colorReset,
		colorBlue, logType, colorReset,
		levelColor, fmt.Sprintf("%-5s %s", levelText, message), colorReset,
		time.Since(h.startTime).Milliseconds(),
	)
	return nil
}
