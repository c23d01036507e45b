package models

// Movie is a row of the movies table. Movies are seed data and never written by the API.
type Movie struct {
	ID           int      `json:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement:false"`
	Title        string   `json:"title" gorm:"column:title;not null"`
	Year         *string  `json:"year" gorm:"column:year"`
	IMDbRating   *float64 `json:"imdb_rating" gorm:"column:imdb_rating"`
	IMDbVotes    *int     `json:"imdb_votes" gorm:"column:imdb_votes"`
	RawScriptURL *string  `json:"raw_script_url" gorm:"column:raw_script_url"`
}

// TableName maps Movie to the movies table
func (Movie) TableName() string {
	return "movies"
}

// MovieListRow is one row of the movie listing, carrying the number of lines in the movie
type MovieListRow struct {
	MovieID       int      `gorm:"column:movie_id"`
	MovieTitle    string   `gorm:"column:movie_title"`
	Year          *string  `gorm:"column:year"`
	IMDbRating    *float64 `gorm:"column:imdb_rating"`
	IMDbVotes     *int     `gorm:"column:imdb_votes"`
	NumberOfLines int      `gorm:"column:number_of_lines"`
}

// TopCharacterRow is a character of a movie ranked by its number of lines
type TopCharacterRow struct {
	CharacterID int    `gorm:"column:character_id"`
	Character   string `gorm:"column:character"`
	NumLines    int    `gorm:"column:num_lines"`
}

// MovieDetail is a movie together with its most talkative characters
type MovieDetail struct {
	Movie         Movie
	TopCharacters []TopCharacterRow
}
