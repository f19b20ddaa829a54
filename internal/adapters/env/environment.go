// Package env reads the variables a build runs with.
package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filename is the optional dotenv file read from the build directory.
const Filename = ".env"

// Environment implements ports.Environment. Values from the process
// environment take precedence over the dotenv file, as with godotenv.Load.
type Environment struct{}

// New creates a new Environment.
func New() *Environment {
	return &Environment{}
}

// Load returns the process environment merged over dir/.env.
// A missing .env file is not an error.
func (e *Environment) Load(dir string) (map[string]string, error) {
	path := filepath.Join(dir, Filename)

	vars, err := godotenv.Read(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		vars = make(map[string]string)
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}

	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}

	return vars, nil
}
