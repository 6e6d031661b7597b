package iodb

import (
	"fmt"

	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(host string, port int, database, user string, err error) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d/%s</em>

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Check the database section of <em>~/.config/d4s/config.yaml</em>
     or D4S_DATABASE_* variables (user: %s)`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, database, host, port, user},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when the pool is used before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when checking for a table fails.
func TableCheckError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBSchemaError,
		Msg:  "Cannot check if table <em>%s</em> exists",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}
