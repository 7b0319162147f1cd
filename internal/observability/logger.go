// internal/observability/logger.go
package observability

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds the process logger: console output, RFC3339
// timestamps, the app name and a per-run session id. It also replaces
// the zerolog global logger.
func InitLogger(app string) zerolog.Logger {
	return initLogger(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, app, uuid.NewString())
}

func initLogger(w io.Writer, app, session string) zerolog.Logger {
	logger := zerolog.New(w).With().
		Timestamp().
		Str("app", app).
		Str("session", session).
		Logger()
	log.Logger = logger
	return logger
}
