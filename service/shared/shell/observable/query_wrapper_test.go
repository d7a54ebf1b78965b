package observable_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-desk-go/service/shared/shell"
	"github.com/AntonStoeckl/library-desk-go/service/shared/shell/observable"
	. "github.com/AntonStoeckl/library-desk-go/testutil/postgresengine/helper" //nolint:revive
)

func Test_QueryWrapper_Handle_Success_RecordsResultSize(t *testing.T) {
	// arrange
	metricsSpy := NewMetricsCollectorSpy()
	logSpy := NewLogHandlerSpy(false)

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		mockQueryHandler{result: mockResult{rows: 3}},
		observable.WithQueryMetrics[mockQuery, mockResult](metricsSpy),
		observable.WithQueryContextualLogging[mockQuery, mockResult](slog.New(logSpy)),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Size())
	assert.True(t, metricsSpy.HasDurationRecordWithLabel(shell.QueryHandlerDurationMetric, shell.LogAttrQueryType, "TestQuery"))
	assert.True(t, logSpy.HasInfoLogWithMessage(shell.LogMsgQueryCompleted).WithAttr(shell.LogAttrResultSize).Assert())
}

func Test_QueryWrapper_Handle_Canceled(t *testing.T) {
	// arrange
	metricsSpy := NewMetricsCollectorSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, mockResult](
		mockQueryHandler{err: context.Canceled},
		observable.WithQueryMetrics[mockQuery, mockResult](metricsSpy),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, metricsSpy.HasCounterRecordWithLabel(shell.QueryHandlerCallsMetric, shell.LogAttrStatus, shell.StatusCanceled))
}

type mockQuery struct{}

func (q mockQuery) QueryType() string {
	return "TestQuery"
}

type mockResult struct {
	rows int
}

func (r mockResult) Size() int {
	return r.rows
}

type mockQueryHandler struct {
	result mockResult
	err    error
}

func (h mockQueryHandler) Handle(_ context.Context, _ mockQuery) (mockResult, error) {
	return h.result, h.err
}
