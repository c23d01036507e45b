package repository

import (
	"errors"
	"fmt"
)

// ErrUnknownSort is returned when a sort key is not one of the documented options
var ErrUnknownSort = errors.New("unknown sort option")

// CharacterSort orders the character listing
type CharacterSort string

const (
	CharacterSortName  CharacterSort = "character"
	CharacterSortMovie CharacterSort = "movie"
	CharacterSortLines CharacterSort = "number_of_lines"
)

// ParseCharacterSort validates a sort query value; empty selects the default
func ParseCharacterSort(s string) (CharacterSort, error) {
	if s == "" {
		return CharacterSortName, nil
	}
	sort := CharacterSort(s)
	if _, err := sort.orderBy(); err != nil {
		return "", err
	}
	return sort, nil
}

func (s CharacterSort) orderBy() (string, error) {
	switch s {
	case CharacterSortName:
		return "c.name ASC, c.character_id ASC", nil
	case CharacterSortMovie:
		return "m.title ASC, c.character_id ASC", nil
	case CharacterSortLines:
		return "number_of_lines DESC, c.character_id ASC", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, string(s))
}

// MovieSort orders the movie listing
type MovieSort string

const (
	MovieSortTitle  MovieSort = "movie_title"
	MovieSortYear   MovieSort = "year"
	MovieSortRating MovieSort = "rating"
)

// ParseMovieSort validates a sort query value; empty selects the default
func ParseMovieSort(s string) (MovieSort, error) {
	if s == "" {
		return MovieSortTitle, nil
	}
	sort := MovieSort(s)
	if _, err := sort.orderBy(); err != nil {
		return "", err
	}
	return sort, nil
}

func (s MovieSort) orderBy() (string, error) {
	switch s {
	case MovieSortTitle:
		return "m.title ASC, m.movie_id ASC", nil
	case MovieSortYear:
		return "m.year ASC, m.movie_id ASC", nil
	case MovieSortRating:
		return "m.imdb_rating DESC, m.movie_id ASC", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, string(s))
}

// LineSort orders the line listing
type LineSort string

const (
	LineSortMovieTitle LineSort = "movie_title"
	LineSortText       LineSort = "line_text"
)

// ParseLineSort validates a sort query value; empty selects the default
func ParseLineSort(s string) (LineSort, error) {
	if s == "" {
		return LineSortText, nil
	}
	sort := LineSort(s)
	if _, err := sort.orderBy(); err != nil {
		return "", err
	}
	return sort, nil
}

func (s LineSort) orderBy() (string, error) {
	switch s {
	case LineSortMovieTitle:
		return "m.title ASC, l.line_id ASC", nil
	case LineSortText:
		return "l.line_text ASC, l.line_id ASC", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSort, string(s))
}
