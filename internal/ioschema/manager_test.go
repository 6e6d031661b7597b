package ioschema_test

import (
	"context"
	"testing"

	"github.com/data4safety/d4s/internal/iodb"
	"github.com/data4safety/d4s/internal/ioschema"
	"github.com/data4safety/d4s/internal/iotesting"
	"github.com/data4safety/d4s/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateNotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	err := mgr.Migrate(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)
}

func TestMigrate(t *testing.T) {
	cfg := iotesting.DatabaseConfig(t)
	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, cfg))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Migrate(ctx))
	require.NoError(t, mgr.Migrate(ctx), "migration is idempotent")

	for _, v := range []string{"publish_runs", "decisions", "geo_sex_totals"} {
		exists, err := op.TableExists(ctx, v)
		require.NoError(t, err)
		assert.True(t, exists, v)
	}
}
