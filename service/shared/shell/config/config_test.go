package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/service/shared/shell/config"
)

func Test_Factories_RejectEmptyDSN(t *testing.T) {
	ctx := t.Context()

	_, pgxErr := config.NewPGXPool(ctx, "", config.PoolOptions{})
	_, sqlErr := config.NewSQLDB(ctx, "", config.PoolOptions{})
	_, sqlxErr := config.NewSQLX(ctx, "", config.PoolOptions{})

	assert.ErrorIs(t, pgxErr, config.ErrEmptyDSN)
	assert.ErrorIs(t, sqlErr, config.ErrEmptyDSN)
	assert.ErrorIs(t, sqlxErr, config.ErrEmptyDSN)
}

func Test_NewPGXPool_RejectsMalformedDSN(t *testing.T) {
	_, err := config.NewPGXPool(t.Context(), "postgres://%zz", config.PoolOptions{MaxConns: 1})

	assert.Error(t, err)
}
