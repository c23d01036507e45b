package models

// Character is a row of the characters table. Every character belongs to exactly one movie.
type Character struct {
	ID      int     `json:"character_id" gorm:"column:character_id;primaryKey;autoIncrement:false"`
	Name    string  `json:"name" gorm:"column:name;not null"`
	MovieID int     `json:"movie_id" gorm:"column:movie_id;not null;index"`
	Gender  *string `json:"gender" gorm:"column:gender"`
	Age     *int    `json:"age" gorm:"column:age"`
}

// TableName maps Character to the characters table
func (Character) TableName() string {
	return "characters"
}

// CharacterListRow is one row of the character listing
type CharacterListRow struct {
	CharacterID   int    `gorm:"column:character_id"`
	Character     string `gorm:"column:character"`
	Movie         string `gorm:"column:movie"`
	NumberOfLines int    `gorm:"column:number_of_lines"`
}

// CharacterRow is a single character joined with the title of its movie
type CharacterRow struct {
	CharacterID int     `gorm:"column:character_id"`
	Character   string  `gorm:"column:character"`
	MovieID     int     `gorm:"column:movie_id"`
	Movie       string  `gorm:"column:movie"`
	Gender      *string `gorm:"column:gender"`
	Age         *int    `gorm:"column:age"`
}

// PartnerRow is another character sharing conversations with a given character,
// with the total number of lines across those conversations
type PartnerRow struct {
	CharacterID           int     `gorm:"column:character_id"`
	Character             string  `gorm:"column:character"`
	Gender                *string `gorm:"column:gender"`
	NumberOfLinesTogether int     `gorm:"column:number_of_lines_together"`
}

// CharacterDetail is a character with its conversation partners ordered by lines together
type CharacterDetail struct {
	Character        CharacterRow
	TopConversations []PartnerRow
}
