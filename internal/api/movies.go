package api

import (
	"net/http"

	"movie-dialogue-api/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	service *service.MovieService
}

func NewMovieHandler(service *service.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newMovieResponse(detail))
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	var params NameListParams
	if err := bindList(c, &params); err != nil {
		_ = c.Error(err)
		return
	}

	rows, err := h.service.List(c.Request.Context(), params.query())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newMovieList(rows))
}
