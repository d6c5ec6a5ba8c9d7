package collect

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// readText reads a whole file and rejects anything that is not valid UTF-8.
// Non-regular files (FIFOs, sockets, devices) are refused before opening so a
// pipe in the tree cannot block the run.
func readText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: not a regular file (mode %s)", filepath.Base(path), info.Mode())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return "", fmt.Errorf("%s: cannot decode as UTF-8: %w", filepath.Base(path), err)
	}
	return string(data), nil
}

// relativePath returns path relative to root, falling back to path itself.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
