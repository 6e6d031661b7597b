package iochart

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

func ChartRenderError(path string, err error) error {
	msg := "Cannot render chart <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChartRenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot render %s: %w", fn, path, err),
	}
}
