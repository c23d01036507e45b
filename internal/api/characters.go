package api

import (
	"net/http"

	"movie-dialogue-api/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	service *service.CharacterService
}

func NewCharacterHandler(service *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// GetCharacter returns one character with the partners it shares the most lines with
func (h *CharacterHandler) GetCharacter(c *gin.Context) {
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

	c.JSON(http.StatusOK, newCharacterResponse(detail))
}

// ListCharacters returns a page of characters with their line counts
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
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

	c.JSON(http.StatusOK, newCharacterList(rows))
}
