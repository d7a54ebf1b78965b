package registeredreaders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/inmemengine"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/registeredreaders"
)

func Test_RegisteredReaders_OrderedByLastName(t *testing.T) {
	// setup
	ctx := t.Context()
	store := inmemengine.NewStore()
	handler := registeredreaders.NewQueryHandler(store)

	// arrange
	for _, r := range [][2]string{{"79000000001", "Tolstoy"}, {"79000000002", "Austen"}} {
		reader, err := library.BuildNewReader(r[0], "Some", r[1], "1900-01-01")
		require.NoError(t, err)
		require.NoError(t, store.RegisterReader(ctx, reader))
	}

	// act
	result, err := handler.Handle(ctx, registeredreaders.BuildQuery(true))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Size())
	assert.Equal(t, "Austen", result.Readers[0].LastName)
	assert.Equal(t, "Tolstoy", result.Readers[1].LastName)
}

func Test_RegisteredReaders_StoreFailureIsReturned(t *testing.T) {
	// setup
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// act
	_, err := registeredreaders.NewQueryHandler(inmemengine.NewStore()).Handle(ctx, registeredreaders.BuildQuery(false))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
