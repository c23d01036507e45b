package service

import (
	"context"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/cache"
)

type CharacterService struct {
	*base
	repo repository.CharacterRepository
}

func newCharacterService(repo repository.CharacterRepository, b *base) *CharacterService {
	return &CharacterService{base: b, repo: repo}
}

// Get returns the character with its conversation partners
func (s *CharacterService) Get(ctx context.Context, id int) (*models.CharacterDetail, error) {
	detail, err := read(ctx, s.base, cache.Key("characters", id), func(ctx context.Context) (*models.CharacterDetail, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, lookupError(err, ErrCharacterNotFound, "character", id)
	}
	return detail, nil
}

// List returns a page of characters
func (s *CharacterService) List(ctx context.Context, q ListQuery) ([]models.CharacterListRow, error) {
	sort, err := repository.ParseCharacterSort(q.Sort)
	if err != nil {
		return nil, invalidSort(q.Sort, string(repository.CharacterSortName), string(repository.CharacterSortMovie), string(repository.CharacterSortLines))
	}
	opts, err := q.options()
	if err != nil {
		return nil, err
	}

	rows, err := read(ctx, s.base, q.cacheKey("characters", string(sort)), func(ctx context.Context) ([]models.CharacterListRow, error) {
		return s.repo.List(ctx, opts, sort)
	})
	if err != nil {
		return nil, listError(err)
	}
	return rows, nil
}
