package api

import "movie-dialogue-api/backend/internal/models"

// Response bodies. Field names are part of the public contract.

type PartnerResponse struct {
	CharacterID           int     `json:"character_id"`
	Character             string  `json:"character"`
	Gender                *string `json:"gender"`
	NumberOfLinesTogether int     `json:"number_of_lines_together"`
}

type CharacterResponse struct {
	CharacterID      int               `json:"character_id"`
	Character        string            `json:"character"`
	Movie            string            `json:"movie"`
	Gender           *string           `json:"gender"`
	TopConversations []PartnerResponse `json:"top_conversations"`
}

type CharacterListItem struct {
	CharacterID   int    `json:"character_id"`
	Character     string `json:"character"`
	Movie         string `json:"movie"`
	NumberOfLines int    `json:"number_of_lines"`
}

type TopCharacterResponse struct {
	CharacterID int    `json:"character_id"`
	Character   string `json:"character"`
	NumLines    int    `json:"num_lines"`
}

type MovieResponse struct {
	MovieID       int                    `json:"movie_id"`
	Title         string                 `json:"title"`
	TopCharacters []TopCharacterResponse `json:"top_characters"`
}

type MovieListItem struct {
	MovieID       int      `json:"movie_id"`
	MovieTitle    string   `json:"movie_title"`
	Year          *string  `json:"year"`
	IMDbRating    *float64 `json:"imdb_rating"`
	IMDbVotes     *int     `json:"imdb_votes"`
	NumberOfLines int      `json:"number_of_lines"`
}

type LineResponse struct {
	LineID         int    `json:"line_id"`
	CharacterID    int    `json:"character_id"`
	Character      string `json:"character"`
	MovieID        int    `json:"movie_id"`
	MovieTitle     string `json:"movie_title"`
	ConversationID int    `json:"conversation_id"`
	LineText       string `json:"line_text"`
}

type LineListItem struct {
	LineID      int    `json:"line_id"`
	CharacterID int    `json:"character_id"`
	Character   string `json:"character"`
	Text        string `json:"text"`
	MovieTitle  string `json:"movie_title"`
}

type ConversationLineResponse struct {
	CharacterID int    `json:"character_id"`
	Character   string `json:"character"`
	Line        string `json:"line"`
}

type ConversationResponse struct {
	ConversationID int                        `json:"conversation_id"`
	MovieID        int                        `json:"movie_id"`
	MovieTitle     string                     `json:"movie_title"`
	Character1ID   int                        `json:"character_1_id"`
	Character1     string                     `json:"character_1"`
	Character2ID   int                        `json:"character_2_id"`
	Character2     string                     `json:"character_2"`
	Conversation   []ConversationLineResponse `json:"conversation"`
}

type CreatedResponse struct {
	ID int `json:"id"`
}

func newCharacterResponse(d *models.CharacterDetail) CharacterResponse {
	partners := make([]PartnerResponse, len(d.TopConversations))
	for i, p := range d.TopConversations {
		partners[i] = PartnerResponse{
			CharacterID:           p.CharacterID,
			Character:             p.Character,
			Gender:                p.Gender,
			NumberOfLinesTogether: p.NumberOfLinesTogether,
		}
	}
	return CharacterResponse{
		CharacterID:      d.Character.CharacterID,
		Character:        d.Character.Character,
		Movie:            d.Character.Movie,
		Gender:           d.Character.Gender,
		TopConversations: partners,
	}
}

func newCharacterList(rows []models.CharacterListRow) []CharacterListItem {
	items := make([]CharacterListItem, len(rows))
	for i, r := range rows {
		items[i] = CharacterListItem{
			CharacterID:   r.CharacterID,
			Character:     r.Character,
			Movie:         r.Movie,
			NumberOfLines: r.NumberOfLines,
		}
	}
	return items
}

func newMovieResponse(d *models.MovieDetail) MovieResponse {
	top := make([]TopCharacterResponse, len(d.TopCharacters))
	for i, c := range d.TopCharacters {
		top[i] = TopCharacterResponse{CharacterID: c.CharacterID, Character: c.Character, NumLines: c.NumLines}
	}
	return MovieResponse{MovieID: d.Movie.ID, Title: d.Movie.Title, TopCharacters: top}
}

func newMovieList(rows []models.MovieListRow) []MovieListItem {
	items := make([]MovieListItem, len(rows))
	for i, r := range rows {
		items[i] = MovieListItem{
			MovieID:       r.MovieID,
			MovieTitle:    r.MovieTitle,
			Year:          r.Year,
			IMDbRating:    r.IMDbRating,
			IMDbVotes:     r.IMDbVotes,
			NumberOfLines: r.NumberOfLines,
		}
	}
	return items
}

func newLineResponse(l *models.LineRow) LineResponse {
	return LineResponse{
		LineID:         l.LineID,
		CharacterID:    l.CharacterID,
		Character:      l.Character,
		MovieID:        l.MovieID,
		MovieTitle:     l.MovieTitle,
		ConversationID: l.ConversationID,
		LineText:       l.LineText,
	}
}

func newLineList(rows []models.LineListRow) []LineListItem {
	items := make([]LineListItem, len(rows))
	for i, r := range rows {
		items[i] = LineListItem{
			LineID:      r.LineID,
			CharacterID: r.CharacterID,
			Character:   r.Character,
			Text:        r.Text,
			MovieTitle:  r.MovieTitle,
		}
	}
	return items
}

func newConversationResponse(d *models.ConversationDetail) ConversationResponse {
	lines := make([]ConversationLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = ConversationLineResponse{CharacterID: l.CharacterID, Character: l.Character, Line: l.Text}
	}
	c := d.Conversation
	return ConversationResponse{
		ConversationID: c.ConversationID,
		MovieID:        c.MovieID,
		MovieTitle:     c.MovieTitle,
		Character1ID:   c.Character1ID,
		Character1:     c.Character1,
		Character2ID:   c.Character2ID,
		Character2:     c.Character2,
		Conversation:   lines,
	}
}
