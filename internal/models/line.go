package models

// Line is a row of the lines table. LineSort is the 1-based position within the conversation.
type Line struct {
	ID             int    `json:"line_id" gorm:"column:line_id;primaryKey;autoIncrement:false"`
	CharacterID    int    `json:"character_id" gorm:"column:character_id;not null;index"`
	MovieID        int    `json:"movie_id" gorm:"column:movie_id;not null;index"`
	ConversationID int    `json:"conversation_id" gorm:"column:conversation_id;not null;index"`
	LineSort       int    `json:"line_sort" gorm:"column:line_sort;not null"`
	LineText       string `json:"line_text" gorm:"column:line_text"`
}

// TableName maps Line to the lines table
func (Line) TableName() string {
	return "lines"
}

// LineListRow is one row of the line listing
type LineListRow struct {
	LineID      int    `gorm:"column:line_id"`
	CharacterID int    `gorm:"column:character_id"`
	Character   string `gorm:"column:character"`
	Text        string `gorm:"column:text"`
	MovieTitle  string `gorm:"column:movie_title"`
}

// LineRow is a single line joined with its speaker and movie
type LineRow struct {
	LineID         int    `gorm:"column:line_id"`
	CharacterID    int    `gorm:"column:character_id"`
	Character      string `gorm:"column:character"`
	MovieID        int    `gorm:"column:movie_id"`
	MovieTitle     string `gorm:"column:movie_title"`
	ConversationID int    `gorm:"column:conversation_id"`
	LineText       string `gorm:"column:line_text"`
}

// All returns every table model, in dependency order, for AutoMigrate
func All() []any {
	return []any{&Movie{}, &Character{}, &Conversation{}, &Line{}}
}
