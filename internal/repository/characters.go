package repository

import (
	"context"

	"movie-dialogue-api/backend/internal/models"

	"gorm.io/gorm"
)

// CharacterRepository reads characters and their line statistics
type CharacterRepository interface {
	GetByID(ctx context.Context, id int) (*models.CharacterDetail, error)
	List(ctx context.Context, opts ListOptions, sort CharacterSort) ([]models.CharacterListRow, error)
}

type GormCharacterRepository struct {
	db *gorm.DB
}

func NewGormCharacterRepository(db *gorm.DB) *GormCharacterRepository {
	return &GormCharacterRepository{db: db}
}

// GetByID returns the character with its movie title and every conversation partner,
// ranked by the number of lines in the conversations they share
func (r *GormCharacterRepository) GetByID(ctx context.Context, id int) (*models.CharacterDetail, error) {
	db := r.db.WithContext(ctx)

	var character models.CharacterRow
	result := db.Table("characters AS c").
		Select(`c.character_id, c.name AS "character", c.movie_id, m.title AS movie, c.gender, c.age`).
		Joins("JOIN movies AS m ON m.movie_id = c.movie_id").
		Where("c.character_id = ?", id).
		Limit(1).
		Scan(&character)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	partners := []models.PartnerRow{}
	err := db.Table("conversations AS cv").
		Select(`p.character_id, p.name AS "character", p.gender, COUNT(l.line_id) AS number_of_lines_together`).
		Joins("JOIN characters AS p ON p.character_id = CASE WHEN cv.character1_id = ? THEN cv.character2_id ELSE cv.character1_id END", id).
		Joins("LEFT JOIN lines AS l ON l.conversation_id = cv.conversation_id").
		Where("(cv.character1_id = ? OR cv.character2_id = ?) AND p.character_id <> ?", id, id, id).
		Group("p.character_id, p.name, p.gender").
		Order("number_of_lines_together DESC, p.character_id ASC").
		Scan(&partners).Error
	if err != nil {
		return nil, err
	}

	return &models.CharacterDetail{Character: character, TopConversations: partners}, nil
}

// List returns characters with their movie title and line count. Characters without
// lines are included with a count of zero.
func (r *GormCharacterRepository) List(ctx context.Context, opts ListOptions, sort CharacterSort) ([]models.CharacterListRow, error) {
	order, err := sort.orderBy()
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Table("characters AS c").
		Select(`c.character_id, c.name AS "character", m.title AS movie, COUNT(l.line_id) AS number_of_lines`).
		Joins("JOIN movies AS m ON m.movie_id = c.movie_id").
		Joins("LEFT JOIN lines AS l ON l.character_id = c.character_id")
	q = whereContains(q, "c.name", opts.Filter)

	rows := []models.CharacterListRow{}
	err = paginate(q.Group("c.character_id, c.name, m.title").Order(order), opts).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
