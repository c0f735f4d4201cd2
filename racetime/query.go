package racetime

import (
	"context"
	"encoding/json"
	"net/http"
)

// Query calls the Endpoint and decodes its JSON response into a T.
//
// Query makes exactly one request. A 404 Not Found returns an error of kind KindNotFound; any other non-2xx status
// returns KindUnexpectedStatus. If the response body doesn't decode into T, lacks a field T requires, or is null
// while T is not a pointer, map, slice or interface, Query returns KindDeserialization.
// Errors can be tested with errors.Is (e.g. errors.Is(err, ErrNotFound)) or [KindOf].
func Query[T any](ctx context.Context, c *Client, e Endpoint) (T, error) {
	var response T

	target, err := c.ResolvePath(e.RelativePath())
	if err != nil {
		return response, err
	}

	query, err := QueryString(e)
	if err != nil {
		return response, asError(KindParameterSerialization, err)
	}
	if query != "" {
		target.RawQuery = query
	}

	resp, err := c.Get(ctx, target)
	if err != nil {
		return response, err
	}
	c.logger.Debug("request completed", "url", target.String(), "status", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return response, &Error{Kind: KindNotFound, URL: target.String(), Status: resp.Status, StatusCode: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, &Error{Kind: KindUnexpectedStatus, URL: target.String(), Status: resp.Status, StatusCode: resp.StatusCode}
	}

	if isNull(resp.Body) && !nullable[T]() {
		return response, &Error{Kind: KindDeserialization, URL: target.String(), Body: resp.Body, Err: errNullObject}
	}
	if err = json.Unmarshal(resp.Body, &response); err != nil {
		return response, &Error{Kind: KindDeserialization, URL: target.String(), Body: resp.Body, Err: err}
	}
	return response, nil
}

// asError returns err if it already is an *Error. Otherwise, it wraps err in an *Error of the given kind.
func asError(kind Kind, err error) error {
	if KindOf(err) != 0 {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// AllRaces calls racetime.gg's /races/data endpoint. It returns all races that are currently open or in progress.
func (c *Client) AllRaces(ctx context.Context) ([]RaceWithPartialCategory, error) {
	resp, err := Query[Races[RaceWithPartialCategory]](ctx, c, AllRaces{})
	return resp.Races, err
}

// PastCategoryRaces calls racetime.gg's /:category/races/data endpoint. It returns one page of finished races,
// without entrants, regardless of the endpoint's ShowEntrants setting.
func (c *Client) PastCategoryRaces(ctx context.Context, e PastCategoryRaces) (RacesPaginated[Race], error) {
	return Query[RacesPaginated[Race]](ctx, c, e.WithShowEntrants(false))
}

// PastCategoryRacesWithEntrants calls racetime.gg's /:category/races/data?show_entrants=true endpoint.
// It returns one page of finished races, including each race's entrants.
func (c *Client) PastCategoryRacesWithEntrants(ctx context.Context, e PastCategoryRaces) (RacesPaginated[RaceWithEntrants], error) {
	return Query[RacesPaginated[RaceWithEntrants]](ctx, c, e.WithShowEntrants(true))
}

// Leaderboards calls racetime.gg's /:category/leaderboards/data endpoint. It returns the category's leaderboards.
func (c *Client) Leaderboards(ctx context.Context, category string) ([]Leaderboard, error) {
	resp, err := Query[LeaderboardsResult](ctx, c, NewLeaderboards(category))
	return resp.Leaderboards, err
}

// SearchUsers calls racetime.gg's /user/search endpoint. It returns all users matching the search.
func (c *Client) SearchUsers(ctx context.Context, search UserSearch) ([]User, error) {
	resp, err := Query[UserSearchResult](ctx, c, search)
	return resp.Results, err
}

// UserData calls racetime.gg's /user/:id/data endpoint. It returns the user's profile.
func (c *Client) UserData(ctx context.Context, id string) (UserProfile, error) {
	return Query[UserProfile](ctx, c, NewUserData(id))
}
