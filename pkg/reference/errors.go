package reference

import (
	"fmt"
	"runtime"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// ParseError is returned when reference YAML cannot be decoded.
func ParseError(err error) error {
	msg := "Cannot parse reference data"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot parse reference YAML: %w",
			fn.Name(), err),
	}
}

// InvalidError is returned when reference entries fail validation.
func InvalidError(err error) error {
	msg := `Reference data is invalid

<em>Rules:</em>
  - every entry has a code, codes under 'geo' are unique
  - 'lat' and 'lon' are both present or both absent
  - latitude is within [-90, 90], longitude within [-180, 180]
  - citizenship rows have code, country and continent`
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReferenceError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: reference validation failed: %w",
			fn.Name(), err),
	}
}
