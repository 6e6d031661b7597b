// Package iofs prepares the file system layout of d4s: configuration,
// cache and log directories and the editable YAML files.
package iofs

import (
	"os"

	"github.com/data4safety/d4s/pkg/config"
	"github.com/data4safety/d4s/pkg/reference"
	"github.com/data4safety/d4s/pkg/templates"
)

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory for generated files if it is missing.
func EnsureDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureReferenceFile writes the default reference data next to
// config.yaml, unless the user already has one.
func EnsureReferenceFile(homeDir string) error {
	return ensureFile(config.ReferenceFilePath(homeDir), templates.ReferenceYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return WriteDefaultFileError(path, err)
	}

	return nil
}

// LoadReference reads reference.yaml from the config directory. If the
// file does not exist, the embedded default is used.
func LoadReference(homeDir string) (*reference.Reference, error) {
	path := config.ReferenceFilePath(homeDir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return reference.Parse([]byte(templates.ReferenceYAML))
	}
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return reference.Parse(data)
}
