package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setupHealthRoutes registers health check endpoints
func (r *Router) setupHealthRoutes() {
	r.Engine.GET("/health", r.Container.Health.Handler())

	// Liveness only says the process serves requests; it never touches the store
	r.Engine.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"env":       r.Config.Server.Env,
			"uptime":    time.Since(startTime).Round(time.Second).String(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
