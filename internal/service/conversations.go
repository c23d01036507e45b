package service

import (
	"context"
	"errors"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/cache"
)

type ConversationService struct {
	*base
	repo repository.ConversationRepository
}

func newConversationService(repo repository.ConversationRepository, b *base) *ConversationService {
	return &ConversationService{base: b, repo: repo}
}

// Get returns the conversation with its lines in order
func (s *ConversationService) Get(ctx context.Context, id int) (*models.ConversationDetail, error) {
	detail, err := read(ctx, s.base, cache.Key("conversations", id), func(ctx context.Context) (*models.ConversationDetail, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, lookupError(err, ErrConversationNotFound, "conversation", id)
	}
	return detail, nil
}

// AddConversation stores a conversation between two characters of a movie and returns its id.
// Either the conversation and all of its lines are written, or nothing is.
func (s *ConversationService) AddConversation(ctx context.Context, movieID int, req models.NewConversation) (int, error) {
	c1, c2 := req.Character1ID, req.Character2ID
	if c1 == c2 {
		return 0, newError(ErrDuplicateCharacters,
			map[string]any{"character_1_id": c1, "character_2_id": c2},
			"character_1_id and character_2_id must differ")
	}

	var conversationID int
	err := s.breaker.Execute(func() error {
		return s.repo.WithTx(ctx, func(tx repository.ConversationTx) error {
			id, err := s.insert(tx, movieID, req)
			conversationID = id
			return err
		})
	})
	if err != nil {
		var domainErr *Error
		if errors.As(err, &domainErr) {
			return 0, domainErr
		}
		return 0, upstream(err)
	}

	s.invalidate(ctx)
	s.metrics.ConversationAdded(ctx, len(req.Lines))

	s.log.Info("conversation added",
		"conversation_id", conversationID,
		"movie_id", movieID,
		"lines", len(req.Lines),
	)
	return conversationID, nil
}

// insert validates the request against the store and writes it, all inside tx
func (s *ConversationService) insert(tx repository.ConversationTx, movieID int, req models.NewConversation) (int, error) {
	c1, c2 := req.Character1ID, req.Character2ID

	if _, err := tx.FindMovie(movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, newError(ErrMovieNotFound, map[string]any{"movie_id": movieID}, "movie %d not found", movieID)
		}
		return 0, err
	}

	characters, err := tx.FindCharactersInMovie(movieID, c1, c2)
	if err != nil {
		return 0, err
	}
	if len(characters) < 2 {
		found := make(map[int]bool, len(characters))
		for _, c := range characters {
			found[c.ID] = true
		}
		missing := []int{}
		for _, id := range []int{c1, c2} {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return 0, newError(ErrCharactersNotInMovie,
			map[string]any{"movie_id": movieID, "character_ids": missing},
			"characters %v are not part of movie %d", missing, movieID)
	}

	for i, line := range req.Lines {
		if line.CharacterID != c1 && line.CharacterID != c2 {
			return 0, newError(ErrLineCharacterMismatch,
				map[string]any{"line_index": i, "character_id": line.CharacterID},
				"line %d is spoken by character %d, who is not part of this conversation", i, line.CharacterID)
		}
	}

	conversationID, err := tx.NextConversationID()
	if err != nil {
		return 0, err
	}
	firstLineID, err := tx.NextLineID()
	if err != nil {
		return 0, err
	}

	lines := make([]models.Line, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = models.Line{
			ID:             firstLineID + i,
			CharacterID:    line.CharacterID,
			MovieID:        movieID,
			ConversationID: conversationID,
			LineSort:       i + 1,
			LineText:       line.LineText,
		}
	}

	conversation := &models.Conversation{
		ID:           conversationID,
		Character1ID: c1,
		Character2ID: c2,
		MovieID:      movieID,
	}
	if err := tx.Insert(conversation, lines); err != nil {
		return 0, err
	}
	return conversationID, nil
}
