package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "d4s"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/d4s by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for generated files
// (charts and exports written without an explicit destination).
// Returns ~/.cache/d4s by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/d4s/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/d4s/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ReferenceFilePath returns the full path to the reference.yaml file
// with citizenship coordinates and names.
// Returns ~/.config/d4s/reference.yaml by default.
func ReferenceFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "reference.yaml")
}
