package config

import (
	"os"
	"path/filepath"
)

const defaultEnvFile = ".env"

// FindEnvFile locates name (".env" when empty) for Load. Absolute paths are
// checked as given. Relative names are looked up from the working directory
// upward, stopping at the first directory holding go.mod, so tests running
// inside a package directory pick up the repository's env file and nothing
// outside it.
func FindEnvFile(name string) (string, error) {
	if name == "" {
		name = defaultEnvFile
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if isModuleRoot(dir) {
			return "", os.ErrNotExist
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func isModuleRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil
}
