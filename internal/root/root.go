// Package root locates the switch configuration directory and registry file.
package root

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

const (
	// ConfigDirName is the directory under the user's home holding switch data.
	ConfigDirName = ".config/switch"
	// RegistryFileName is the registry file inside ConfigDirName.
	RegistryFileName = "registry.json"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// ConfigDir returns ~/.config/switch.
func ConfigDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", oops.Wrapf(err, "resolving home directory")
	}
	if home == "" {
		return "", oops.Errorf("resolving home directory: empty path")
	}
	return filepath.Join(home, filepath.FromSlash(ConfigDirName)), nil
}

// RegistryPath returns the default registry file location.
func RegistryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RegistryFileName), nil
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", oops.Wrapf(err, "resolving home directory")
	}
	return filepath.Join(home, path[1:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1])
}
