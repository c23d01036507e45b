package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups when no row matches the requested id
var ErrNotFound = errors.New("record not found")

// Repositories groups the gorm-backed repositories sharing one connection pool
type Repositories struct {
	DB           *gorm.DB
	Character    *GormCharacterRepository
	Movie        *GormMovieRepository
	Line         *GormLineRepository
	Conversation *GormConversationRepository
}

// NewRepositories creates all repositories over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:           db,
		Character:    NewGormCharacterRepository(db),
		Movie:        NewGormMovieRepository(db),
		Line:         NewGormLineRepository(db),
		Conversation: NewGormConversationRepository(db),
	}
}

// Ping checks that the database answers queries
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
