package desk_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/desk"
)

func Test_Client_SendsRequestIDAndDecodesProblems(t *testing.T) {
	// setup
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"title":"Conflict","status":409,"detail":"reader already registered"}`))
	}))
	t.Cleanup(server.Close)

	// act
	err := desk.NewClient(server.URL).RegisterReader(t.Context(), desk.ReaderForm{Phone: "79001234567"}.Request())

	// assert
	var apiErr *desk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "reader already registered", apiErr.Message)
	assert.Len(t, requestID, 36)
}

func Test_Client_UsesTheEndpointsPrefix(t *testing.T) {
	// setup
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	// act
	books, err := desk.NewClient(server.URL, desk.WithEndpointsPrefix("/v2")).ListBooks(t.Context())

	// assert
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Equal(t, "/v2/books", path)
}
