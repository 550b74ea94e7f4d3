// Package pathutil provides safe path validation for user-supplied file paths.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateConfigPath validates a configuration file path. Config files
// must be YAML and must not contain directory traversal patterns.
func ValidateConfigPath(path string) (string, error) {
	absPath, err := validate(path)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if ext != ".yaml" && ext != ".yml" {
		return "", fmt.Errorf("config file must have .yaml or .yml extension, got %s", ext)
	}

	return absPath, nil
}

// ValidateInputPath validates a findings input file path.
func ValidateInputPath(path string) (string, error) {
	return validate(path)
}

func validate(path string) (string, error) {
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path contains directory traversal pattern: %s", path)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("getting absolute path: %w", err)
	}

	return absPath, nil
}
