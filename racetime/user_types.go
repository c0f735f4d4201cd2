package racetime

import (
	"strings"

	"codeberg.org/clambin/go-common/set"
)

// User is a racetime.gg user, as included in other responses.
type User struct {
	Avatar            *string `json:"avatar"`
	Pronouns          *string `json:"pronouns"`
	TwitchName        *string `json:"twitch_name"`
	TwitchDisplayName *string `json:"twitch_display_name"`
	TwitchChannel     *string `json:"twitch_channel"`
	ID                string  `json:"id"`
	FullName          string  `json:"full_name"`
	Name              string  `json:"name"`
	Discriminator     string  `json:"discriminator"`
	URL               string  `json:"url"`
	// Flair is a space-separated list of flairs. Use Flairs to get them as a list.
	Flair       string `json:"flair"`
	CanModerate bool   `json:"can_moderate"`
}

// Flairs returns the user's flairs, sorted and without duplicates.
func (u User) Flairs() []string {
	flairs := set.New[string]()
	for _, flair := range strings.Fields(u.Flair) {
		flairs.Add(flair)
	}
	return flairs.ListOrdered()
}

// UserStats contains a user's race statistics.
type UserStats struct {
	Joined   int `json:"joined"`
	First    int `json:"first"`
	Second   int `json:"second"`
	Third    int `json:"third"`
	Forfeits int `json:"forfeits"`
}

// UserProfile is the response of the UserData endpoint.
type UserProfile struct {
	User
	Stats UserStats `json:"stats"`
}

// UserSearchResult is the response of the UserSearch endpoint.
type UserSearchResult struct {
	Results []User `json:"results"`
}

// LeaderboardsResult is the response of the Leaderboards endpoint.
type LeaderboardsResult struct {
	Leaderboards []Leaderboard `json:"leaderboards"`
}

// Leaderboard ranks the users of a category for one goal.
type Leaderboard struct {
	Goal      string    `json:"goal"`
	Rankings  []Ranking `json:"rankings"`
	NumRanked int       `json:"num_ranked"`
}

// Ranking is one entry in a Leaderboard. BestTime is an ISO 8601 duration, or null if the user never finished.
type Ranking struct {
	BestTime     *string `json:"best_time"`
	User         User    `json:"user"`
	PlaceOrdinal string  `json:"place_ordinal"`
	Place        int     `json:"place"`
	Score        int     `json:"score"`
	TimesRaced   int     `json:"times_raced"`
}
