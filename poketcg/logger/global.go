package logger

import (
	"log/slog"
	"time"
)

// SlowCommandThreshold is the duration past which a successful command
// is still reported as slow.
const SlowCommandThreshold = 2 * time.Second

// LogCommand logs a finished command with the shared attribute set.
func LogCommand(name, userID string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("user_id", userID),
		slog.Duration("took", duration),
	}

	switch {
	case err != nil:
		slog.Error("Command failed", append(attrs,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case duration > SlowCommandThreshold:
		slog.Warn("Command executed slowly", append(attrs,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(attrs,
			slog.String("status", "success"),
		)...)
	}
}

// LogStore logs a finished document store operation. Extra attrs carry
// operation-specific context such as the discord_id.
func LogStore(operation string, duration time.Duration, err error, attrs ...any) {
	base := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}
	base = append(base, attrs...)

	if err != nil {
		slog.Error("Store operation failed", append(base, slog.Any("error", err))...)
	} else {
		slog.Debug("Store operation completed", base...)
	}
}

// LogSystem logs lifecycle events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}
