package service

import (
	"context"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/cache"
)

type LineService struct {
	*base
	repo repository.LineRepository
}

func newLineService(repo repository.LineRepository, b *base) *LineService {
	return &LineService{base: b, repo: repo}
}

func (s *LineService) Get(ctx context.Context, id int) (*models.LineRow, error) {
	line, err := read(ctx, s.base, cache.Key("lines", id), func(ctx context.Context) (*models.LineRow, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, lookupError(err, ErrLineNotFound, "line", id)
	}
	return line, nil
}

// List returns a page of lines; the filter matches the line text
func (s *LineService) List(ctx context.Context, q ListQuery) ([]models.LineListRow, error) {
	sort, err := repository.ParseLineSort(q.Sort)
	if err != nil {
		return nil, invalidSort(q.Sort, string(repository.LineSortMovieTitle), string(repository.LineSortText))
	}
	opts, err := q.options()
	if err != nil {
		return nil, err
	}

	rows, err := read(ctx, s.base, q.cacheKey("lines", string(sort)), func(ctx context.Context) ([]models.LineListRow, error) {
		return s.repo.List(ctx, opts, sort)
	})
	if err != nil {
		return nil, listError(err)
	}
	return rows, nil
}
