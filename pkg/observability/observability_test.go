package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCloudWatch struct {
	mock.Mock
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(ctx, params)
	return &cloudwatch.PutMetricDataOutput{}, args.Error(0)
}

func TestCollector_RecordsAndExposes(t *testing.T) {
	c := NewCollector("gorgonzola")

	c.RecordHTTPRequest(http.MethodGet, "/items", 200, 15*time.Millisecond)
	c.RecordHTTPRequest(http.MethodGet, "/items", 200, 5*time.Millisecond)
	c.RecordDBOperation("Query", time.Millisecond, errors.New("boom"))
	c.RecordCacheHit()
	c.RecordCacheMiss()
	c.RecordCacheMiss()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/items", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.DBOperations.WithLabelValues("Query", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.CacheMisses))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gorgonzola_http_requests_total")

	// A second collector owns a separate registry
	assert.NotPanics(t, func() { NewCollector("gorgonzola") })
}

func TestMetrics_RecordSync(t *testing.T) {
	ctx := context.Background()
	cw := new(mockCloudWatch)
	cw.On("PutMetricData", ctx, mock.MatchedBy(func(in *cloudwatch.PutMetricDataInput) bool {
		return *in.Namespace == "GorgonZola/test" && len(in.MetricData) == 7
	})).Return(nil)

	m := NewMetrics("GorgonZola/test", cw)
	err := m.RecordSync(ctx, SyncCounts{Items: 10, Recipes: 3, Duration: time.Second})

	require.NoError(t, err)
	cw.AssertExpectations(t)
}

func TestMetrics_DisabledIsNoop(t *testing.T) {
	m := NewMetrics("ns", nil)
	assert.NoError(t, m.RecordSync(context.Background(), SyncCounts{}))
	assert.NoError(t, m.RecordMigration(context.Background(), "delete-all", 3))

	var nilMetrics *Metrics
	assert.NoError(t, nilMetrics.RecordSync(context.Background(), SyncCounts{}))
}

func TestTracer_DisabledRunsFunction(t *testing.T) {
	tr := NewTracer("gorgonzola", false)
	called := false

	err := tr.TraceFunction(context.Background(), "sync", func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	client := &http.Client{}
	assert.Same(t, client, tr.InstrumentHTTPClient(client))
}
