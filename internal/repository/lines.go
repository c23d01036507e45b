package repository

import (
	"context"

	"movie-dialogue-api/backend/internal/models"

	"gorm.io/gorm"
)

// LineRepository reads dialogue lines
type LineRepository interface {
	GetByID(ctx context.Context, id int) (*models.LineRow, error)
	List(ctx context.Context, opts ListOptions, sort LineSort) ([]models.LineListRow, error)
}

type GormLineRepository struct {
	db *gorm.DB
}

func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

func (r *GormLineRepository) GetByID(ctx context.Context, id int) (*models.LineRow, error) {
	var line models.LineRow
	result := r.db.WithContext(ctx).Table("lines AS l").
		Select(`l.line_id, l.character_id, c.name AS "character", l.movie_id, m.title AS movie_title, l.conversation_id, l.line_text`).
		Joins("JOIN characters AS c ON c.character_id = l.character_id").
		Joins("JOIN movies AS m ON m.movie_id = l.movie_id").
		Where("l.line_id = ?", id).
		Limit(1).
		Scan(&line)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &line, nil
}

func (r *GormLineRepository) List(ctx context.Context, opts ListOptions, sort LineSort) ([]models.LineListRow, error) {
	order, err := sort.orderBy()
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Table("lines AS l").
		Select(`l.line_id, l.character_id, c.name AS "character", l.line_text AS "text", m.title AS movie_title`).
		Joins("JOIN characters AS c ON c.character_id = l.character_id").
		Joins("JOIN movies AS m ON m.movie_id = l.movie_id")
	q = whereContains(q, "l.line_text", opts.Filter)

	rows := []models.LineListRow{}
	if err := paginate(q.Order(order), opts).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
