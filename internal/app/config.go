package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-todo-store/internal/config"
)

var globalConfig *config.Config

// MustReadConfig reads the file at path when it is set and
// the environment otherwise.
func MustReadConfig(path string) {
	var reader config.Reader = config.NewEnvReader()
	if path != "" {
		reader = config.NewFileReader(path)
	}

	cfg, err := reader.Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", path).
			Msg("failed to read config")
		panic(err)
	}
	globalLogger.Debug().
		Str("env", cfg.Env).
		Str("path", path).
		Msg("read config")

	globalConfig = cfg
}
