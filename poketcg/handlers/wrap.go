package handlers

import (
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"

	"poketcg/poketcg/logger"
)

// WrapWithLogging wraps a command handler with start/outcome logging.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
		)

		err := h(e)
		logger.LogCommand(name, e.User().ID.String(), time.Since(start), err)

		return err
	}
}
