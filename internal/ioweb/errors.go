package ioweb

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

func ServerError(addr string, err error) error {
	msg := "HTTP server on <em>%s</em> failed"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: server on %s: %w", fn, addr, err),
	}
}
