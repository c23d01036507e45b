package api

import (
	"movie-dialogue-api/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Handlers groups the resource handlers of the API
type Handlers struct {
	Characters    *CharacterHandler
	Movies        *MovieHandler
	Lines         *LineHandler
	Conversations *ConversationHandler
}

// NewHandlers builds one handler per service
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Characters:    NewCharacterHandler(services.Characters),
		Movies:        NewMovieHandler(services.Movies),
		Lines:         NewLineHandler(services.Lines),
		Conversations: NewConversationHandler(services.Conversations),
	}
}

// Register mounts the resource routes on r. List and create routes answer with and
// without a trailing slash. writeGuard, when given, runs before every write.
func (h *Handlers) Register(r gin.IRouter, writeGuard ...gin.HandlerFunc) {
	both := func(method, path string, handlers ...gin.HandlerFunc) {
		r.Handle(method, path, handlers...)
		r.Handle(method, path+"/", handlers...)
	}

	both("GET", "/characters", h.Characters.ListCharacters)
	r.GET("/characters/:id", h.Characters.GetCharacter)

	both("GET", "/movies", h.Movies.ListMovies)
	r.GET("/movies/:id", h.Movies.GetMovie)

	both("GET", "/lines", h.Lines.ListLines)
	r.GET("/lines/:id", h.Lines.GetLine)

	r.GET("/conversations/:id", h.Conversations.GetConversation)

	write := append(append([]gin.HandlerFunc{}, writeGuard...), h.Conversations.AddConversation)
	both("POST", "/movies/:movie_id/conversations", write...)
}
