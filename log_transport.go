package rollbar

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// LogTransport is a [Transport] that writes payloads to a zerolog logger
// instead of sending them. It is meant for local development, where reports
// should show up in the console rather than in Rollbar.
type LogTransport struct {
	logger zerolog.Logger
}

func NewLogTransport(logger zerolog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Post(_ context.Context, body []byte, _ string) error {
	var item struct {
		Data struct {
			Level   string `json:"level"`
			UUID    string `json:"uuid"`
			Context string `json:"context"`
			Body    struct {
				Message map[string]any `json:"message"`
			} `json:"body"`
		} `json:"data"`
	}

	if err := json.Unmarshal(body, &item); err != nil {
		return &TransportError{Err: fmt.Errorf("failed to decode payload: %w", err)}
	}

	level, err := ParseLevel(item.Data.Level)
	if err != nil {
		level = LevelError
	}

	message, _ := item.Data.Body.Message["body"].(string)

	t.logger.WithLevel(zerologLevel(level)).
		Str("uuid", item.Data.UUID).
		Str("context", item.Data.Context).
		RawJSON("payload", body).
		Msg(message)

	return nil
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	default:
		// zerolog has no critical level.
		return zerolog.ErrorLevel
	}
}
