package iopublish

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when Publish is called before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Publishing attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// PublishError reports a failed publishing step. The transaction is
// rolled back.
func PublishError(step string, err error) error {
	msg := "Cannot publish snapshot: %s failed"
	vars := []any{step}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PublishError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s: %w", fn, step, err),
	}
}
