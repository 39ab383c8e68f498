package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/joho/godotenv"
)

// EnvLoader serves values from the process environment once the env files are merged into it.
type EnvLoader struct{}

type fileLogger interface {
	Infof(format string, args ...any)
	Fatalf(format string, args ...any)
}

type envFile struct {
	path     string
	optional bool
}

// NewEnvFile merges <folder>/.env, <folder>/.local.env and, when APP_ENV is set, <folder>/.<APP_ENV>.env
// into the environment. A later file overrides an earlier one and a variable set before the call is
// never overwritten. Missing files are skipped. A file that exists but cannot be read is fatal,
// except for .local.env.
func NewEnvFile(folder string, log fileLogger) Config {
	files := []envFile{{path: folder + "/.env"}, {path: folder + "/.local.env", optional: true}}

	if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
		files = append(files, envFile{path: fmt.Sprintf("%s/.%s.env", folder, appEnv)})
	}

	merged := make(map[string]string)

	for _, f := range files {
		values, err := godotenv.Read(f.path)

		switch {
		case err == nil:
			maps.Copy(merged, values)
			log.Infof("Loaded config from file: %v", f.path)
		case f.optional || errors.Is(err, fs.ErrNotExist):
		default:
			log.Fatalf("Failed to load config from file: %v, Err: %v", f.path, err)
		}
	}

	for key, value := range merged {
		if _, set := os.LookupEnv(key); !set {
			_ = os.Setenv(key, value)
		}
	}

	return &EnvLoader{}
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvLoader) GetOrDefault(key, defaultValue string) string {
	return getOrDefault(e, key, defaultValue)
}
