package repository

import (
	"context"
	"testing"

	"movie-dialogue-api/backend/internal/models"
	"movie-dialogue-api/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepos(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(testutil.NewSeededStore(t))
}

func characterIDs(rows []models.CharacterListRow) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.CharacterID
	}
	return ids
}

func TestCharacterGetByID(t *testing.T) {
	repos := newRepos(t)

	detail, err := repos.Character.GetByID(context.Background(), testutil.Ripley)
	require.NoError(t, err)

	assert.Equal(t, "RIPLEY", detail.Character.Character)
	assert.Equal(t, "alien", detail.Character.Movie)
	require.NotNil(t, detail.Character.Gender)
	assert.Equal(t, "f", *detail.Character.Gender)

	require.Len(t, detail.TopConversations, 2)
	assert.Equal(t, testutil.Dallas, detail.TopConversations[0].CharacterID)
	assert.Equal(t, "DALLAS", detail.TopConversations[0].Character)
	assert.Equal(t, 3, detail.TopConversations[0].NumberOfLinesTogether)
	assert.Equal(t, testutil.Amy, detail.TopConversations[1].CharacterID)
	assert.Equal(t, 2, detail.TopConversations[1].NumberOfLinesTogether)
}

func TestCharacterGetByIDWithoutConversations(t *testing.T) {
	repos := newRepos(t)

	detail, err := repos.Character.GetByID(context.Background(), testutil.Rick)
	require.NoError(t, err)
	assert.NotNil(t, detail.TopConversations)
	assert.Empty(t, detail.TopConversations)
}

func TestCharacterGetByIDNotFound(t *testing.T) {
	repos := newRepos(t)

	_, err := repos.Character.GetByID(context.Background(), testutil.MissingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCharacterList(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	tests := []struct {
		name string
		opts ListOptions
		sort CharacterSort
		want []int
	}{
		{"by name", ListOptions{}, CharacterSortName, []int{testutil.Amy, testutil.Dallas, testutil.Deckard, testutil.Gramys, testutil.Ilsa, testutil.Rachael, testutil.Rick, testutil.Ripley}},
		{"by movie", ListOptions{}, CharacterSortMovie, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"by lines", ListOptions{}, CharacterSortLines, []int{testutil.Ripley, testutil.Deckard, testutil.Dallas, testutil.Amy, testutil.Rachael, testutil.Gramys, testutil.Rick, testutil.Ilsa}},
		{"filter is case-insensitive", ListOptions{Filter: "Amy"}, CharacterSortLines, []int{testutil.Amy, testutil.Gramys}},
		{"filter without match", ListOptions{Filter: "zzz"}, CharacterSortName, []int{}},
		{"limit", ListOptions{Limit: 3}, CharacterSortName, []int{testutil.Amy, testutil.Dallas, testutil.Deckard}},
		{"offset past the end", ListOptions{Offset: 100}, CharacterSortName, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repos.Character.List(ctx, tt.opts, tt.sort)
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Equal(t, tt.want, characterIDs(rows))
		})
	}
}

func TestCharacterListIncludesZeroCounts(t *testing.T) {
	repos := newRepos(t)

	rows, err := repos.Character.List(context.Background(), ListOptions{Filter: "ilsa"}, CharacterSortName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.CharacterListRow{CharacterID: testutil.Ilsa, Character: "ILSA", Movie: "casablanca", NumberOfLines: 0}, rows[0])
}

func TestCharacterListPagesConcatenate(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	all, err := repos.Character.List(ctx, ListOptions{Limit: MaxLimit}, CharacterSortLines)
	require.NoError(t, err)

	var paged []int
	for offset := 0; offset < len(all); offset += 3 {
		page, err := repos.Character.List(ctx, ListOptions{Limit: 3, Offset: offset}, CharacterSortLines)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page), 3)
		paged = append(paged, characterIDs(page)...)
	}
	assert.Equal(t, characterIDs(all), paged)
}

func TestUnknownSortIsRejected(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	_, err := repos.Character.List(ctx, ListOptions{}, CharacterSort("age"))
	assert.ErrorIs(t, err, ErrUnknownSort)
	_, err = repos.Movie.List(ctx, ListOptions{}, MovieSort("votes"))
	assert.ErrorIs(t, err, ErrUnknownSort)
	_, err = repos.Line.List(ctx, ListOptions{}, LineSort("character"))
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestParseSorts(t *testing.T) {
	cs, err := ParseCharacterSort("")
	require.NoError(t, err)
	assert.Equal(t, CharacterSortName, cs)
	ms, err := ParseMovieSort("")
	require.NoError(t, err)
	assert.Equal(t, MovieSortTitle, ms)
	ls, err := ParseLineSort("")
	require.NoError(t, err)
	assert.Equal(t, LineSortText, ls)

	_, err = ParseCharacterSort("name")
	assert.ErrorIs(t, err, ErrUnknownSort)
	_, err = ParseMovieSort("title")
	assert.ErrorIs(t, err, ErrUnknownSort)
	_, err = ParseLineSort("text")
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestMovieGetByID(t *testing.T) {
	repos := newRepos(t)

	detail, err := repos.Movie.GetByID(context.Background(), testutil.MovieAlien)
	require.NoError(t, err)
	assert.Equal(t, "alien", detail.Movie.Title)
	assert.Equal(t, []models.TopCharacterRow{
		{CharacterID: testutil.Ripley, Character: "RIPLEY", NumLines: 3},
		{CharacterID: testutil.Dallas, Character: "DALLAS", NumLines: 1},
		{CharacterID: testutil.Amy, Character: "AMY", NumLines: 1},
	}, detail.TopCharacters)

	detail, err = repos.Movie.GetByID(context.Background(), testutil.MovieCasablanca)
	require.NoError(t, err)
	assert.Equal(t, []models.TopCharacterRow{
		{CharacterID: testutil.Rick, Character: "RICK", NumLines: 0},
		{CharacterID: testutil.Ilsa, Character: "ILSA", NumLines: 0},
	}, detail.TopCharacters)

	_, err = repos.Movie.GetByID(context.Background(), testutil.MissingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieList(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	ids := func(rows []models.MovieListRow) []int {
		out := make([]int, len(rows))
		for i, r := range rows {
			out[i] = r.MovieID
		}
		return out
	}

	rows, err := repos.Movie.List(ctx, ListOptions{}, MovieSortTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(rows))
	assert.Equal(t, 5, rows[0].NumberOfLines)
	assert.Equal(t, 4, rows[1].NumberOfLines)
	assert.Equal(t, 0, rows[2].NumberOfLines)

	rows, err = repos.Movie.List(ctx, ListOptions{}, MovieSortYear)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(rows))

	rows, err = repos.Movie.List(ctx, ListOptions{}, MovieSortRating)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(rows))

	rows, err = repos.Movie.List(ctx, ListOptions{Filter: "RUNNER"}, MovieSortTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(rows))
}

func TestLineGetByID(t *testing.T) {
	repos := newRepos(t)

	line, err := repos.Line.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.LineRow{
		LineID:         7,
		CharacterID:    testutil.Rachael,
		Character:      "RACHAEL",
		MovieID:        testutil.MovieBladeRunner,
		MovieTitle:     "blade runner",
		ConversationID: 3,
		LineText:       "No.",
	}, *line)

	_, err = repos.Line.GetByID(context.Background(), testutil.MissingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLineList(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	ids := func(rows []models.LineListRow) []int {
		out := make([]int, len(rows))
		for i, r := range rows {
			out[i] = r.LineID
		}
		return out
	}

	rows, err := repos.Line.List(ctx, ListOptions{}, LineSortText)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 3, 6, 4, 5, 2, 7, 1}, ids(rows))
	assert.Equal(t, "100% sure", rows[0].Text)
	assert.Equal(t, "DECKARD", rows[0].Character)
	assert.Equal(t, "blade runner", rows[0].MovieTitle)

	rows, err = repos.Line.List(ctx, ListOptions{}, LineSortMovieTitle)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, ids(rows))

	// LIKE wildcards in the filter match literally
	rows, err = repos.Line.List(ctx, ListOptions{Filter: "_"}, LineSortText)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, ids(rows))

	rows, err = repos.Line.List(ctx, ListOptions{Filter: "0%"}, LineSortText)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, ids(rows))

	rows, err = repos.Line.List(ctx, ListOptions{Filter: "THE"}, LineSortText)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, ids(rows))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%Amy%`, containsPattern("Amy"))
	assert.Equal(t, `%100\%\_A\\b%`, containsPattern(`100%_A\b`))
}

func TestLowerASCII(t *testing.T) {
	assert.Equal(t, "amy", lowerASCII("AMY"))
	assert.Equal(t, "Élise", lowerASCII("ÉLISE"))
}

func TestCharacterListNonASCIIFilter(t *testing.T) {
	db := testutil.NewSeededStore(t)
	require.NoError(t, db.Exec("INSERT INTO characters (character_id, name, movie_id) VALUES (10, 'ÉLISE', ?)", testutil.MovieCasablanca).Error)
	repos := NewRepositories(db)
	ctx := context.Background()

	for _, filter := range []string{"ÉLISE", "Élise", "lise"} {
		rows, err := repos.Character.List(ctx, ListOptions{Filter: filter}, CharacterSortName)
		require.NoError(t, err)
		assert.Equal(t, []int{10}, characterIDs(rows), filter)
	}
}

func TestWhereContainsDialects(t *testing.T) {
	find := func(tx *gorm.DB) *gorm.DB {
		return whereContains(tx.Table("characters AS c"), "c.name", "Amy").Find(&[]models.Character{})
	}

	sqlite := testutil.NewStore(t)
	stmt := sqlite.ToSQL(find)
	assert.Contains(t, stmt, "LOWER(c.name) LIKE")
	assert.Contains(t, stmt, "%amy%")

	pg, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost dbname=movies"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	stmt = pg.ToSQL(find)
	assert.Contains(t, stmt, "c.name ILIKE")
	assert.Contains(t, stmt, "%Amy%")
	assert.NotContains(t, stmt, "LOWER")
}

func TestConversationGetByID(t *testing.T) {
	repos := newRepos(t)

	detail, err := repos.Conversation.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.ConversationRow{
		ConversationID: 1,
		MovieID:        testutil.MovieAlien,
		MovieTitle:     "alien",
		Character1ID:   testutil.Ripley,
		Character1:     "RIPLEY",
		Character2ID:   testutil.Dallas,
		Character2:     "DALLAS",
	}, detail.Conversation)

	require.Len(t, detail.Lines, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{detail.Lines[0].LineSort, detail.Lines[1].LineSort, detail.Lines[2].LineSort})
	assert.Equal(t, "DALLAS", detail.Lines[1].Character)
	assert.Equal(t, "In the vents.", detail.Lines[1].Text)

	_, err = repos.Conversation.GetByID(context.Background(), testutil.MissingID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationTxAllocatesAndInserts(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	var conversationID int
	err := repos.Conversation.WithTx(ctx, func(tx ConversationTx) error {
		movie, err := tx.FindMovie(testutil.MovieCasablanca)
		require.NoError(t, err)
		assert.Equal(t, "casablanca", movie.Title)

		chars, err := tx.FindCharactersInMovie(testutil.MovieCasablanca, testutil.Rick, testutil.Ilsa, testutil.Ripley)
		require.NoError(t, err)
		require.Len(t, chars, 2)

		conversationID, err = tx.NextConversationID()
		require.NoError(t, err)
		lineID, err := tx.NextLineID()
		require.NoError(t, err)
		assert.Equal(t, testutil.MaxConversationID+1, conversationID)
		assert.Equal(t, testutil.MaxLineID+1, lineID)

		return tx.Insert(
			&models.Conversation{ID: conversationID, MovieID: testutil.MovieCasablanca, Character1ID: testutil.Rick, Character2ID: testutil.Ilsa},
			[]models.Line{
				{ID: lineID, ConversationID: conversationID, MovieID: testutil.MovieCasablanca, CharacterID: testutil.Rick, LineSort: 1, LineText: "Here's looking at you, kid."},
			},
		)
	})
	require.NoError(t, err)

	detail, err := repos.Conversation.GetByID(ctx, conversationID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "RICK", detail.Lines[0].Character)
}

func TestConversationTxRollsBack(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	err := repos.Conversation.WithTx(ctx, func(tx ConversationTx) error {
		require.NoError(t, tx.Insert(&models.Conversation{ID: 50, MovieID: testutil.MovieAlien, Character1ID: testutil.Ripley, Character2ID: testutil.Dallas}, nil))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = repos.Conversation.GetByID(ctx, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextIDsOnEmptyStore(t *testing.T) {
	repos := NewRepositories(testutil.NewStore(t))

	err := repos.Conversation.WithTx(context.Background(), func(tx ConversationTx) error {
		id, err := tx.NextConversationID()
		require.NoError(t, err)
		assert.Equal(t, 1, id)
		id, err = tx.NextLineID()
		require.NoError(t, err)
		assert.Equal(t, 1, id)
		return nil
	})
	require.NoError(t, err)
}

func TestPing(t *testing.T) {
	assert.NoError(t, newRepos(t).Ping(context.Background()))
}
