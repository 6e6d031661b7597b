package iofs

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when a config, cache or log directory of
// d4s cannot be created.
func CreateDirError(dir string, err error) error {
	return fsError(
		errcode.CreateDirError,
		"Cannot create d4s directory <em>%s</em>",
		[]any{dir},
		fmt.Errorf("cannot create directory %s: %w", dir, err),
	)
}

// WriteDefaultFileError is returned when an embedded default, such as
// config.yaml or reference.yaml, cannot be written on first run.
func WriteDefaultFileError(path string, err error) error {
	name := filepath.Base(path)
	return fsError(
		errcode.WriteDefaultFileError,
		"Cannot write default %s to <em>%s</em>",
		[]any{name, filepath.Dir(path)},
		fmt.Errorf("cannot write embedded %s: %w", name, err),
	)
}

// ReadFileError is returned when user settings or reference data cannot
// be read or decoded.
func ReadFileError(path string, err error) error {
	return fsError(
		errcode.ReadFileError,
		"Cannot read d4s settings from <em>%s</em>",
		[]any{path},
		fmt.Errorf("cannot read %s: %w", path, err),
	)
}

func fsError(code gn.ErrorCode, msg string, vars []any, err error) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
