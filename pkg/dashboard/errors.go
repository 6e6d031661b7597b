package dashboard

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// ObsValueError is returned when an observation value is not a number.
func ObsValueError(value string, err error) error {
	msg := `Observation value <em>%s</em> is not a number

<em>How to fix:</em>
  1. Check the OBS_VALUE column of the input file
  2. Make sure the file uses the configured delimiter`
	vars := []any{value}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ObsValueError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse OBS_VALUE %q: %w",
			fn.Name(), value, err),
	}
}
