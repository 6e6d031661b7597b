package table

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// MissingColumnError is returned when an operation needs a column the
// table does not have.
func MissingColumnError(column, operation string) error {
	msg := `Column <em>%s</em> is required to %s

<em>How to fix:</em>
  1. Check the header line of the input file
  2. Make sure the file uses the configured delimiter`
	vars := []any{column, operation}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q is absent",
			fn.Name(), column),
	}
}
