package iologger

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when d4s.log cannot be opened. Setting
// log.destination to stderr avoids the file.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot open d4s log <em>%s</em>, set log.destination to stderr to skip it",
		Vars: []any{path},
		Err: fmt.Errorf("from %s: cannot open log for writing: %w",
			runtime.FuncForPC(pc).Name(), err),
	}
}
