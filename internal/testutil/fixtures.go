package testutil

import "movie-dialogue-api/backend/internal/models"

// Fixture ids referenced by tests
const (
	MovieAlien       = 1
	MovieBladeRunner = 2
	MovieCasablanca  = 3
	MissingID        = 9999

	Ripley  = 1
	Dallas  = 2
	Amy     = 3
	Deckard = 4
	Rachael = 5
	Gramys  = 6
	Rick    = 7
	Ilsa    = 8

	MaxConversationID = 4
	MaxLineID         = 9
)

func ptr[T any](v T) *T { return &v }

// Movies returns the fixture movies. Casablanca has characters but no lines.
func Movies() []models.Movie {
	return []models.Movie{
		{ID: MovieAlien, Title: "alien", Year: ptr("1979"), IMDbRating: ptr(8.5), IMDbVotes: ptr(500)},
		{ID: MovieBladeRunner, Title: "blade runner", Year: ptr("1982"), IMDbRating: ptr(8.2), IMDbVotes: ptr(400)},
		{ID: MovieCasablanca, Title: "casablanca", Year: ptr("1942"), IMDbRating: ptr(8.8), IMDbVotes: ptr(300)},
	}
}

// Characters returns the fixture characters. Line counts: RIPLEY 3, DECKARD 2,
// DALLAS, AMY, RACHAEL and GRAMYS 1 each, RICK and ILSA 0.
func Characters() []models.Character {
	return []models.Character{
		{ID: Ripley, Name: "RIPLEY", MovieID: MovieAlien, Gender: ptr("f")},
		{ID: Dallas, Name: "DALLAS", MovieID: MovieAlien, Gender: ptr("m")},
		{ID: Amy, Name: "AMY", MovieID: MovieAlien, Gender: ptr("f")},
		{ID: Deckard, Name: "DECKARD", MovieID: MovieBladeRunner, Gender: ptr("m")},
		{ID: Rachael, Name: "RACHAEL", MovieID: MovieBladeRunner, Gender: ptr("f")},
		{ID: Gramys, Name: "GRAMYS", MovieID: MovieBladeRunner},
		{ID: Rick, Name: "RICK", MovieID: MovieCasablanca, Gender: ptr("m")},
		{ID: Ilsa, Name: "ILSA", MovieID: MovieCasablanca, Gender: ptr("f")},
	}
}

func Conversations() []models.Conversation {
	return []models.Conversation{
		{ID: 1, MovieID: MovieAlien, Character1ID: Ripley, Character2ID: Dallas},
		{ID: 2, MovieID: MovieAlien, Character1ID: Amy, Character2ID: Ripley},
		{ID: 3, MovieID: MovieBladeRunner, Character1ID: Deckard, Character2ID: Rachael},
		{ID: 4, MovieID: MovieBladeRunner, Character1ID: Gramys, Character2ID: Deckard},
	}
}

func Lines() []models.Line {
	return []models.Line{
		{ID: 1, ConversationID: 1, MovieID: MovieAlien, CharacterID: Ripley, LineSort: 1, LineText: "Where is he?"},
		{ID: 2, ConversationID: 1, MovieID: MovieAlien, CharacterID: Dallas, LineSort: 2, LineText: "In the vents."},
		{ID: 3, ConversationID: 1, MovieID: MovieAlien, CharacterID: Ripley, LineSort: 3, LineText: "Close the hatch."},
		{ID: 4, ConversationID: 2, MovieID: MovieAlien, CharacterID: Amy, LineSort: 1, LineText: "Hello Ripley"},
		{ID: 5, ConversationID: 2, MovieID: MovieAlien, CharacterID: Ripley, LineSort: 2, LineText: "Hi Amy"},
		{ID: 6, ConversationID: 3, MovieID: MovieBladeRunner, CharacterID: Deckard, LineSort: 1, LineText: "Have you ever retired a human by mistake?"},
		{ID: 7, ConversationID: 3, MovieID: MovieBladeRunner, CharacterID: Rachael, LineSort: 2, LineText: "No."},
		{ID: 8, ConversationID: 3, MovieID: MovieBladeRunner, CharacterID: Deckard, LineSort: 3, LineText: "100% sure"},
		{ID: 9, ConversationID: 4, MovieID: MovieBladeRunner, CharacterID: Gramys, LineSort: 1, LineText: "Amy_said so"},
	}
}
