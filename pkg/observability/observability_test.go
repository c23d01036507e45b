package observability

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestConversationAdded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	metrics.ConversationAdded(context.Background(), 3)
	metrics.ConversationAdded(context.Background(), 0)

	assert.EqualValues(t, 2, counterValue(t, reader, "dialogue.conversations.created"))
	assert.EqualValues(t, 3, counterValue(t, reader, "dialogue.lines.created"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() { metrics.ConversationAdded(context.Background(), 1) })
}

func TestSetupServesPrometheusMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	telemetry, err := Setup(Options{ServiceName: "test", MetricsEnabled: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = telemetry.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(telemetry.Metrics.Middleware())
	router.GET("/movies/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(telemetry.MetricsHandler()))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/movies/1", nil))
	telemetry.Metrics.ConversationAdded(context.Background(), 2)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dialogue_conversations_created")
	assert.Contains(t, w.Body.String(), "http_server_request_duration")
}

func TestSetupWithoutMetrics(t *testing.T) {
	var spans bytes.Buffer
	telemetry, err := Setup(Options{ServiceName: "test", TracingEnabled: true, TraceOutput: &spans})
	require.NoError(t, err)

	assert.Nil(t, telemetry.MetricsHandler())
	assert.NotNil(t, telemetry.Metrics)
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}
