package statica

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/statica/statica/pkg/log"
)

var (
	DEBUG bool = false
)

// appOsStat redirects to os.Stat.
func appOsStat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// New creates a new application instance.
func New(config *config) *application {
	if _, ok := os.LookupEnv("DEBUG"); ok {
		DEBUG = true
	}

	if DEBUG {
		log.ProgramLevel.Set(slog.LevelDebug)
	}

	return &application{
		config: config,
		logger: slog.New(log.NewHandler(os.Stderr, "app", nil)),
		state:  &applicationState{},
		osStat: appOsStat,
	}
}
