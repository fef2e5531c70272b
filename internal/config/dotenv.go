package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"

	"makeabet/internal/store"
)

// DotenvFiles are tried in order relative to the working directory, so an
// app started from apps/<name> also sees the monorepo root files.
var DotenvFiles = []string{
	".env",
	".env.local",
	"../.env",
	"../.env.local",
	"../../.env",
	"../../.env.local",
}

// LoadDotenv applies every existing file of DotenvFiles under dir. Later
// files override earlier ones and the process environment. It returns the
// files it loaded.
func LoadDotenv(dir string) ([]string, error) {
	var loaded []string
	for _, name := range DotenvFiles {
		path := filepath.Clean(filepath.Join(dir, name))
		if !store.Exists(path) {
			continue
		}
		if err := godotenv.Overload(path); err != nil {
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
