package router

import (
	"net/http"

	"movie-dialogue-api/backend/api/openapi"
	"movie-dialogue-api/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

func (r *Router) setupOpenAPIRoutes() {
	r.Engine.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapi.Spec)
	})
}

// AddOpenAPIValidation validates every request on group against the embedded document
func (r *Router) AddOpenAPIValidation(group gin.IRoutes) {
	v, err := validator.NewOpenAPIValidator(openapi.Spec)
	if err != nil {
		r.Logger.Error("Failed to initialize OpenAPI validator", "error", err)
		return
	}

	group.Use(v.Middleware())
	r.Logger.Info("OpenAPI validation enabled", "operations", v.Operations())
}
