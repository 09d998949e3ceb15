// Package paths centralizes where relfiles looks for its configuration,
// following the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points directly at a configuration file.
	EnvConfigFile = "RELFILES_CONFIG"

	// EnvConfigDir overrides the XDG config directory for relfiles.
	EnvConfigDir = "RELFILES_CONFIG_DIR"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "relfiles.toml"

// ConfigDir returns the directory holding the relfiles configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "relfiles")
}

// ConfigFile returns the path of the configuration file to load. The file
// may not exist; callers treat a missing file as "defaults only".
func ConfigFile() string {
	if file := os.Getenv(EnvConfigFile); file != "" {
		return file
	}
	return filepath.Join(ConfigDir(), ConfigFileName)
}
