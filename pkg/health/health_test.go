package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-dialogue-api/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveHealth(checker *Checker) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/health", checker.Handler())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	return w
}

func TestHealthyDatabase(t *testing.T) {
	checker := NewChecker(logger.Discard(), time.Minute)
	checker.RegisterDatabaseCheck(func(context.Context) error { return nil })

	w := serveHealth(checker)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status     string                `json:"status"`
		Components map[string]*Component `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, StatusUp, body.Components["database"].Status)
	assert.True(t, body.Components["database"].Critical)
}

func TestDatabaseDownIsUnavailable(t *testing.T) {
	checker := NewChecker(logger.Discard(), time.Minute)
	checker.RegisterDatabaseCheck(func(context.Context) error { return errors.New("connection refused") })

	w := serveHealth(checker)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestCacheDownOnlyDegrades(t *testing.T) {
	checker := NewChecker(logger.Discard(), time.Minute)
	checker.RegisterDatabaseCheck(func(context.Context) error { return nil })
	checker.RegisterCacheCheck(func(context.Context) error { return errors.New("redis down") })

	w := serveHealth(checker)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StatusDegraded, checker.GetStatus()["cache"].Status)
}

func TestStartStopsWithContext(t *testing.T) {
	checker := NewChecker(logger.Discard(), 5*time.Millisecond)
	calls := make(chan struct{}, 100)
	checker.RegisterCheck("probe", false, func(context.Context) (Status, string, error) {
		calls <- struct{}{}
		return StatusUp, "", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	checker.Start(ctx)
	assert.Eventually(t, func() bool { return len(calls) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}
