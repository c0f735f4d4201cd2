package racetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// MissingFieldError is returned when a response object lacks a field its type requires.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

var errNullObject = errors.New("expected an object, got null")

// decodeObject decodes the JSON object in data into v. It fails if data is null or if any of the required fields is absent.
func decodeObject(data []byte, v any, required ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errNullObject
	}
	for _, field := range required {
		if _, ok := fields[field]; !ok {
			return &MissingFieldError{Field: field}
		}
	}
	return json.Unmarshal(data, v)
}

// isNull reports whether data is the JSON literal null.
func isNull(data []byte) bool {
	var v any
	return json.Unmarshal(data, &v) == nil && v == nil
}

// nullable reports whether null is a valid value for T.
func nullable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

func (r *Races[T]) UnmarshalJSON(data []byte) error {
	var v struct {
		Races []T `json:"races"`
	}
	if err := decodeObject(data, &v, "races"); err != nil {
		return err
	}
	r.Races = v.Races
	return nil
}

// RacesPaginated embeds Races, so it needs its own UnmarshalJSON: Races.UnmarshalJSON would otherwise be promoted
// and ignore count and num_pages.
func (r *RacesPaginated[T]) UnmarshalJSON(data []byte) error {
	var v struct {
		Races    []T `json:"races"`
		Count    int `json:"count"`
		NumPages int `json:"num_pages"`
	}
	if err := decodeObject(data, &v, "races", "count", "num_pages"); err != nil {
		return err
	}
	*r = RacesPaginated[T]{Races: Races[T]{Races: v.Races}, Count: v.Count, NumPages: v.NumPages}
	return nil
}

func (r *LeaderboardsResult) UnmarshalJSON(data []byte) error {
	type plain LeaderboardsResult
	return decodeObject(data, (*plain)(r), "leaderboards")
}

func (r *UserSearchResult) UnmarshalJSON(data []byte) error {
	type plain UserSearchResult
	return decodeObject(data, (*plain)(r), "results")
}

func (p *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	return decodeObject(data, (*plain)(p), "id", "stats")
}
