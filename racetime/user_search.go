package racetime

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSearchTerm indicates that NewUserSearch was called without a name or a scrim.
	ErrMissingSearchTerm = errors.New("user search needs a name, a scrim or both")
	// ErrInvalidScrim indicates that NewUserSearch was called with a negative scrim.
	ErrInvalidScrim = errors.New("scrim must not be negative")
)

var _ QueryEndpoint = UserSearch{}

// UserSearch searches for users. Its response decodes into UserSearchResult.
type UserSearch struct {
	term string
}

// UserSearchFromTerm returns a UserSearch for a raw search term. The term takes one of three forms:
//
//   - "name": matches all users whose name starts with name
//   - "#scrim": matches all users with that exact scrim (discriminator), e.g. "#0123"
//   - "name#scrim": matches users satisfying both conditions
func UserSearchFromTerm(term string) UserSearch {
	return UserSearch{term: term}
}

// NewUserSearch returns a UserSearch for a name, a scrim, or both. An empty name or a nil scrim is ignored.
// Scrims are zero-padded to four digits.
//
// If both name and scrim are missing, NewUserSearch returns ErrMissingSearchTerm.
func NewUserSearch(name string, scrim *int) (UserSearch, error) {
	if scrim != nil && *scrim < 0 {
		return UserSearch{}, ErrInvalidScrim
	}
	switch {
	case name != "" && scrim != nil:
		return UserSearchFromTerm(fmt.Sprintf("%s#%04d", name, *scrim)), nil
	case name != "":
		return UserSearchFromTerm(name), nil
	case scrim != nil:
		return UserSearchFromTerm(fmt.Sprintf("#%04d", *scrim)), nil
	default:
		return UserSearch{}, ErrMissingSearchTerm
	}
}

// Term returns the search term.
func (u UserSearch) Term() string {
	return u.term
}

func (UserSearch) RelativePath() string {
	return "user/search"
}

func (u UserSearch) QueryString() (string, error) {
	var q queryParams
	if err := q.add("term", u.term); err != nil {
		return "", err
	}
	return q.String(), nil
}
