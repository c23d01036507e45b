package service

import (
	"context"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/cache"
)

type MovieService struct {
	*base
	repo repository.MovieRepository
}

func newMovieService(repo repository.MovieRepository, b *base) *MovieService {
	return &MovieService{base: b, repo: repo}
}

// Get returns the movie with its top characters
func (s *MovieService) Get(ctx context.Context, id int) (*models.MovieDetail, error) {
	detail, err := read(ctx, s.base, cache.Key("movies", id), func(ctx context.Context) (*models.MovieDetail, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, lookupError(err, ErrMovieNotFound, "movie", id)
	}
	return detail, nil
}

// List returns a page of movies
func (s *MovieService) List(ctx context.Context, q ListQuery) ([]models.MovieListRow, error) {
	sort, err := repository.ParseMovieSort(q.Sort)
	if err != nil {
		return nil, invalidSort(q.Sort, string(repository.MovieSortTitle), string(repository.MovieSortYear), string(repository.MovieSortRating))
	}
	opts, err := q.options()
	if err != nil {
		return nil, err
	}

	rows, err := read(ctx, s.base, q.cacheKey("movies", string(sort)), func(ctx context.Context) ([]models.MovieListRow, error) {
		return s.repo.List(ctx, opts, sort)
	})
	if err != nil {
		return nil, listError(err)
	}
	return rows, nil
}
