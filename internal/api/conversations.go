package api

import (
	"net/http"

	"movie-dialogue-api/backend/internal/service"
	apperrors "movie-dialogue-api/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	service *service.ConversationService
}

func NewConversationHandler(service *service.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

func (h *ConversationHandler) GetConversation(c *gin.Context) {
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

	c.JSON(http.StatusOK, newConversationResponse(detail))
}

// AddConversation stores a new conversation, with its lines, in the movie named by the path
func (h *ConversationHandler) AddConversation(c *gin.Context) {
	movieID, err := pathID(c, "movie_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req AddConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindingError(apperrors.CodeInvalidBody, "Invalid conversation body", err))
		return
	}

	id, err := h.service.AddConversation(c.Request.Context(), movieID, req.model())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CreatedResponse{ID: id})
}
