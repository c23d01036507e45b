package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments recorded by the API
type Metrics struct {
	conversationsCreated metric.Int64Counter
	linesCreated         metric.Int64Counter
	requestDuration      metric.Float64Histogram
}

// NewMetrics creates the instruments on meter
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	conversations, err := meter.Int64Counter("dialogue.conversations.created",
		metric.WithDescription("Conversations added through the API"))
	if err != nil {
		return nil, fmt.Errorf("failed to create conversations counter: %w", err)
	}

	lines, err := meter.Int64Counter("dialogue.lines.created",
		metric.WithDescription("Lines added through the API"))
	if err != nil {
		return nil, fmt.Errorf("failed to create lines counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	return &Metrics{
		conversationsCreated: conversations,
		linesCreated:         lines,
		requestDuration:      duration,
	}, nil
}

// ConversationAdded records one committed conversation with its lines
func (m *Metrics) ConversationAdded(ctx context.Context, lines int) {
	if m == nil {
		return
	}
	m.conversationsCreated.Add(ctx, 1)
	m.linesCreated.Add(ctx, int64(lines))
}

// Middleware records the duration of every request by route template and status
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", c.Writer.Status()),
			))
	}
}
