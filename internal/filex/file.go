package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateAll creates (or truncates) the file at path, creating any missing
// parent directories first.
func CreateAll(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
