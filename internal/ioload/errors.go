package ioload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// DataLoadError reports a file that cannot be opened or parsed. CSV errors
// keep the line number in the message.
func DataLoadError(path string, err error) error {
	msg := "Cannot load data from <em>%s</em>"
	vars := []any{path}

	var pErr *csv.ParseError
	if errors.As(err, &pErr) {
		msg = "Cannot load data from <em>%s</em>, line %d: %s"
		vars = append(vars, pErr.Line, pErr.Err)
	}

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load %s: %w", fn, path, err),
	}
}
