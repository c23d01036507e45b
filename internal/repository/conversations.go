package repository

import (
	"context"
	"fmt"

	"movie-dialogue-api/backend/internal/models"

	"gorm.io/gorm"
)

// lineInsertBatchSize bounds the number of rows per INSERT statement for lines
const lineInsertBatchSize = 200

// ConversationRepository reads conversations and opens write transactions for new ones
type ConversationRepository interface {
	GetByID(ctx context.Context, id int) (*models.ConversationDetail, error)
	WithTx(ctx context.Context, fn func(tx ConversationTx) error) error
}

// ConversationTx is the set of operations available while adding a conversation.
// All of them run inside one transaction that also holds the id allocation lock,
// so ids returned by NextConversationID and NextLineID stay free until commit.
type ConversationTx interface {
	FindMovie(id int) (*models.Movie, error)
	FindCharactersInMovie(movieID int, characterIDs ...int) ([]models.Character, error)
	NextConversationID() (int, error)
	NextLineID() (int, error)
	Insert(conversation *models.Conversation, lines []models.Line) error
}

type GormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) *GormConversationRepository {
	return &GormConversationRepository{db: db}
}

// GetByID returns the conversation, its participants and its lines ordered by line_sort
func (r *GormConversationRepository) GetByID(ctx context.Context, id int) (*models.ConversationDetail, error) {
	db := r.db.WithContext(ctx)

	var conversation models.ConversationRow
	result := db.Table("conversations AS cv").
		Select("cv.conversation_id, cv.movie_id, m.title AS movie_title, " +
			"cv.character1_id, c1.name AS character1_name, cv.character2_id, c2.name AS character2_name").
		Joins("JOIN movies AS m ON m.movie_id = cv.movie_id").
		Joins("JOIN characters AS c1 ON c1.character_id = cv.character1_id").
		Joins("JOIN characters AS c2 ON c2.character_id = cv.character2_id").
		Where("cv.conversation_id = ?", id).
		Limit(1).
		Scan(&conversation)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	lines := []models.ConversationLineRow{}
	err := db.Table("lines AS l").
		Select(`l.line_id, l.line_sort, l.character_id, c.name AS "character", l.line_text`).
		Joins("JOIN characters AS c ON c.character_id = l.character_id").
		Where("l.conversation_id = ?", id).
		Order("l.line_sort ASC, l.line_id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	return &models.ConversationDetail{Conversation: conversation, Lines: lines}, nil
}

// WithTx runs fn in a transaction. On PostgreSQL the conversations and lines tables are
// locked in SHARE ROW EXCLUSIVE mode first: the mode conflicts with itself, so writers
// allocate max+1 ids one at a time while plain readers are not blocked. fn returning an
// error rolls back everything it wrote.
func (r *GormConversationRepository) WithTx(ctx context.Context, fn func(tx ConversationTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE conversations, lines IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
				return fmt.Errorf("failed to lock conversation tables: %w", err)
			}
		}
		return fn(&gormConversationTx{db: tx})
	})
}

type gormConversationTx struct {
	db *gorm.DB
}

func (t *gormConversationTx) FindMovie(id int) (*models.Movie, error) {
	return findMovie(t.db, id)
}

func (t *gormConversationTx) FindCharactersInMovie(movieID int, characterIDs ...int) ([]models.Character, error) {
	characters := []models.Character{}
	err := t.db.Where("movie_id = ? AND character_id IN ?", movieID, characterIDs).
		Order("character_id ASC").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (t *gormConversationTx) NextConversationID() (int, error) {
	return t.nextID("conversations", "conversation_id")
}

func (t *gormConversationTx) NextLineID() (int, error) {
	return t.nextID("lines", "line_id")
}

func (t *gormConversationTx) nextID(table, column string) (int, error) {
	var max int
	err := t.db.Table(table).Select("COALESCE(MAX(" + column + "), 0)").Row().Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read max %s: %w", column, err)
	}
	return max + 1, nil
}

func (t *gormConversationTx) Insert(conversation *models.Conversation, lines []models.Line) error {
	if err := t.db.Create(conversation).Error; err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	if len(lines) == 0 {
		return nil
	}
	if err := t.db.CreateInBatches(lines, lineInsertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert lines: %w", err)
	}
	return nil
}
