package models

// Conversation is a row of the conversations table
type Conversation struct {
	ID           int `json:"conversation_id" gorm:"column:conversation_id;primaryKey;autoIncrement:false"`
	Character1ID int `json:"character1_id" gorm:"column:character1_id;not null"`
	Character2ID int `json:"character2_id" gorm:"column:character2_id;not null"`
	MovieID      int `json:"movie_id" gorm:"column:movie_id;not null;index"`
}

// TableName maps Conversation to the conversations table
func (Conversation) TableName() string {
	return "conversations"
}

// ConversationRow is a conversation joined with its movie title and participant names
type ConversationRow struct {
	ConversationID int    `gorm:"column:conversation_id"`
	MovieID        int    `gorm:"column:movie_id"`
	MovieTitle     string `gorm:"column:movie_title"`
	Character1ID   int    `gorm:"column:character1_id"`
	Character1     string `gorm:"column:character1_name"`
	Character2ID   int    `gorm:"column:character2_id"`
	Character2     string `gorm:"column:character2_name"`
}

// ConversationLineRow is one line of a conversation with the speaker's name
type ConversationLineRow struct {
	LineID      int    `gorm:"column:line_id"`
	LineSort    int    `gorm:"column:line_sort"`
	CharacterID int    `gorm:"column:character_id"`
	Character   string `gorm:"column:character"`
	Text        string `gorm:"column:line_text"`
}

// ConversationDetail is a conversation with its lines in line_sort order
type ConversationDetail struct {
	Conversation ConversationRow
	Lines        []ConversationLineRow
}

// NewConversationLine is one line of a conversation submitted for insertion
type NewConversationLine struct {
	CharacterID int    `json:"character_id"`
	LineText    string `json:"line_text"`
}

// NewConversation is a conversation to add to a movie, lines in speaking order
type NewConversation struct {
	Character1ID int                   `json:"character_1_id"`
	Character2ID int                   `json:"character_2_id"`
	Lines        []NewConversationLine `json:"lines"`
}
