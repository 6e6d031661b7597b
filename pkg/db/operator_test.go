package db_test

import (
	"testing"

	"github.com/data4safety/d4s/internal/iodb"
	"github.com/data4safety/d4s/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestNewPgxOperator(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool(), "no pool before Connect")
	assert.NoError(t, op.Close(), "closing an unconnected operator is fine")
}
