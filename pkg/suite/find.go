package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the suite file looked up from the working directory.
const FileName = ".conncheck.yaml"

// ErrNotFound is returned by FindFile when no suite file exists.
var ErrNotFound = errors.New(FileName + " not found")

// FindFile returns explicitPath if set, otherwise the nearest FileName in
// startDir or one of its ancestors. A directory holding .git, or the home
// directory, is the last one searched.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("suite file not found: %w", err)
		}
		return explicitPath, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for _, d := range ancestors(dir) {
		if candidate := filepath.Join(d, FileName); exists(candidate) {
			return candidate, nil
		}
		if d == home || exists(filepath.Join(d, ".git")) {
			break
		}
	}
	return "", ErrNotFound
}

// ancestors lists dir and each parent up to the filesystem root.
func ancestors(dir string) []string {
	dirs := []string{dir}
	for parent := filepath.Dir(dir); parent != dir; parent = filepath.Dir(dir) {
		dir = parent
		dirs = append(dirs, dir)
	}
	return dirs
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
