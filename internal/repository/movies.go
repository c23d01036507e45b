package repository

import (
	"context"
	"errors"

	"movie-dialogue-api/backend/internal/models"

	"gorm.io/gorm"
)

// topCharacterCount is how many characters a movie lookup ranks
const topCharacterCount = 5

// MovieRepository reads movies and their character statistics
type MovieRepository interface {
	GetByID(ctx context.Context, id int) (*models.MovieDetail, error)
	List(ctx context.Context, opts ListOptions, sort MovieSort) ([]models.MovieListRow, error)
}

type GormMovieRepository struct {
	db *gorm.DB
}

func NewGormMovieRepository(db *gorm.DB) *GormMovieRepository {
	return &GormMovieRepository{db: db}
}

// GetByID returns the movie and its top characters by number of lines
func (r *GormMovieRepository) GetByID(ctx context.Context, id int) (*models.MovieDetail, error) {
	db := r.db.WithContext(ctx)

	movie, err := findMovie(db, id)
	if err != nil {
		return nil, err
	}

	top := []models.TopCharacterRow{}
	err = db.Table("characters AS c").
		Select(`c.character_id, c.name AS "character", COUNT(l.line_id) AS num_lines`).
		Joins("LEFT JOIN lines AS l ON l.character_id = c.character_id").
		Where("c.movie_id = ?", id).
		Group("c.character_id, c.name").
		Order("num_lines DESC, c.character_id ASC").
		Limit(topCharacterCount).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}

	return &models.MovieDetail{Movie: *movie, TopCharacters: top}, nil
}

// List returns movies with their number of lines
func (r *GormMovieRepository) List(ctx context.Context, opts ListOptions, sort MovieSort) ([]models.MovieListRow, error) {
	order, err := sort.orderBy()
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Table("movies AS m").
		Select("m.movie_id, m.title AS movie_title, m.year, m.imdb_rating, m.imdb_votes, COUNT(l.line_id) AS number_of_lines").
		Joins("LEFT JOIN lines AS l ON l.movie_id = m.movie_id")
	q = whereContains(q, "m.title", opts.Filter)

	rows := []models.MovieListRow{}
	err = paginate(q.Group("m.movie_id, m.title, m.year, m.imdb_rating, m.imdb_votes").Order(order), opts).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func findMovie(db *gorm.DB, id int) (*models.Movie, error) {
	var movie models.Movie
	if err := db.Where("movie_id = ?", id).Take(&movie).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}
