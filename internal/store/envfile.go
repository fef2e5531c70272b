package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EnvFile is a dotenv document: KEY=value lines, comments and blank lines
// kept in order.
type EnvFile struct {
	Path  string // relative to the project root
	Lines []string
}

// Bytes renders the file with a trailing newline.
func (f EnvFile) Bytes() []byte {
	return []byte(strings.Join(f.Lines, "\n") + "\n")
}

// WriteEnvFiles writes every file under root and returns the relative paths
// written, in order. It stops at the first failure.
func WriteEnvFiles(root string, files []EnvFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := WriteFile(filepath.Join(root, f.Path), f.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}
