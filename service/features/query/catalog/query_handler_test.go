package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/library"
	"github.com/AntonStoeckl/library-desk-go/library/inmemengine"
	"github.com/AntonStoeckl/library-desk-go/service/features/query/catalog"
	. "github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/helper" //nolint:revive
)

func Test_Catalog_ListsBooksOrderedByTitle(t *testing.T) {
	// setup
	ctx := t.Context()
	store := inmemengine.NewStore()
	handler := catalog.NewQueryHandler(store)

	// arrange
	phone := GivenUniquePhone()
	require.NoError(t, store.RegisterReader(ctx, FixtureNewReader(t, phone)))
	_, _ = store.AddBook(ctx, FixtureNewBook(t, "Zen", 2001))
	lentID, _ := store.AddBook(ctx, FixtureNewBook(t, "Anna Karenina", 1878))
	require.NoError(t, store.LendBook(ctx, lentID, phone))

	// act
	result, err := handler.Handle(ctx, catalog.BuildQuery(false))

	// assert
	require.NoError(t, err)
	require.Equal(t, 2, result.Size())
	assert.Equal(t, 1, result.Borrowed())
	assert.Equal(t, "Anna Karenina", result.Books[0].Title)
	assert.Equal(t, "Zen", result.Books[1].Title)
	require.NotNil(t, result.Books[0].BorrowerFirstName)
	assert.Equal(t, "Ada", *result.Books[0].BorrowerFirstName)
}

func Test_Catalog_EmptyStoreYieldsEmptyNonNilList(t *testing.T) {
	// act
	result, err := catalog.NewQueryHandler(inmemengine.NewStore()).Handle(t.Context(), catalog.BuildQuery(false))

	// assert
	assert.NoError(t, err)
	assert.NotNil(t, result.Books)
	assert.Zero(t, result.Size())
}

func Test_Catalog_EventualConsistencyIsPassedToTheStore(t *testing.T) {
	// setup
	spy := &consistencySpy{}
	handler := catalog.NewQueryHandler(spy)

	// act
	_, _ = handler.Handle(t.Context(), catalog.BuildQuery(false))
	strong := spy.seen
	_, _ = handler.Handle(t.Context(), catalog.BuildQuery(true))
	eventual := spy.seen

	// assert
	assert.Equal(t, library.StrongConsistency, strong)
	assert.Equal(t, library.EventualConsistency, eventual)
}

type consistencySpy struct {
	seen library.ConsistencyLevel
}

func (s *consistencySpy) ListBooks(ctx context.Context) ([]library.Book, error) {
	s.seen = library.GetConsistencyLevel(ctx)
	return nil, nil
}
