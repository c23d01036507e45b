package api

import (
	"net/http"

	"movie-dialogue-api/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type LineHandler struct {
	service *service.LineService
}

func NewLineHandler(service *service.LineService) *LineHandler {
	return &LineHandler{service: service}
}

func (h *LineHandler) GetLine(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	line, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newLineResponse(line))
}

// ListLines filters on the line text rather than a name
func (h *LineHandler) ListLines(c *gin.Context) {
	var params TextListParams
	if err := bindList(c, &params); err != nil {
		_ = c.Error(err)
		return
	}

	rows, err := h.service.List(c.Request.Context(), params.query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newLineList(rows))
}
