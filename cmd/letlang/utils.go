package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// replaceFile writes content to a temporary file next to path and renames it
// over path, keeping the original permissions
func replaceFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".letlang-format-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tempName := tempFile.Name()

	_, err = tempFile.WriteString(content)
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Chmod(tempName, info.Mode().Perm())
	}

	if err == nil {
		err = os.Rename(tempName, path)
	}

	if err != nil {
		os.Remove(tempName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
