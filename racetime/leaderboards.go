package racetime

import "net/url"

var _ Endpoint = Leaderboards{}

// Leaderboards returns the leaderboards of a category, one per goal. Its response decodes into LeaderboardsResult.
type Leaderboards struct {
	category string
}

// NewLeaderboards returns a Leaderboards for the category's slug (e.g. "alttp").
func NewLeaderboards(category string) Leaderboards {
	return Leaderboards{category: category}
}

func (l Leaderboards) RelativePath() string {
	return url.PathEscape(l.category) + "/leaderboards/data"
}
