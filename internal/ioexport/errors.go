package ioexport

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

func ExportError(path string, err error) error {
	msg := "Cannot export to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot export %s: %w", fn, path, err),
	}
}
