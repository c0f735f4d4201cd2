package racetime

// Status is the status of a race or of a race entrant.
type Status struct {
	Value        string `json:"value"`
	VerboseValue string `json:"verbose_value"`
	HelpText     string `json:"help_text"`
}

// Goal is the goal of a race.
type Goal struct {
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

// PartialCategory is the summary of a category, as included in the AllRaces response.
type PartialCategory struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Slug      string `json:"slug"`
	URL       string `json:"url"`
	DataURL   string `json:"data_url"`
	Image     string `json:"image"`
}

// Race is the summary of a race.
//
// Timestamps (OpenedAt, StartedAt) and durations (TimeLimit) are returned exactly as racetime.gg formats them:
// ISO 8601 timestamps and ISO 8601 durations (e.g. "P1DT00H00M00S").
type Race struct {
	StartedAt             *string `json:"started_at"`
	Status                Status  `json:"status"`
	Goal                  Goal    `json:"goal"`
	Name                  string  `json:"name"`
	URL                   string  `json:"url"`
	DataURL               string  `json:"data_url"`
	Info                  string  `json:"info"`
	OpenedAt              string  `json:"opened_at"`
	TimeLimit             string  `json:"time_limit"`
	EntrantsCount         int     `json:"entrants_count"`
	EntrantsCountFinished int     `json:"entrants_count_finished"`
	EntrantsCountInactive int     `json:"entrants_count_inactive"`
}

// RaceWithPartialCategory is a Race that includes its category.
type RaceWithPartialCategory struct {
	Race
	Category PartialCategory `json:"category"`
}

// RaceWithEntrants is a Race that includes its entrants.
type RaceWithEntrants struct {
	Race
	Entrants []PastRaceEntrant `json:"entrants"`
}

// PastRaceEntrant is an entrant of a race that is no longer in progress.
// Pointer fields are null until recorded or when not applicable (e.g. Place for a forfeit).
// Score is the entrant's score when they entered the race. ScoreChange stays null until the race is recorded.
//
// Teams are not included.
type PastRaceEntrant struct {
	FinishTime     *string `json:"finish_time"`
	FinishedAt     *string `json:"finished_at"`
	Place          *int    `json:"place"`
	PlaceOrdinal   *string `json:"place_ordinal"`
	Score          *int    `json:"score"`
	ScoreChange    *int    `json:"score_change"`
	Comment        *string `json:"comment"`
	Status         Status  `json:"status"`
	User           User    `json:"user"`
	HasComment     bool    `json:"has_comment"`
	StreamLive     bool    `json:"stream_live"`
	StreamOverride bool    `json:"stream_override"`
}

// Races is a list of races. Use Races[RaceWithPartialCategory] for the AllRaces endpoint.
type Races[T any] struct {
	Races []T `json:"races"`
}

// RacesPaginated is one page of a list of races.
type RacesPaginated[T any] struct {
	Races[T]
	Count    int `json:"count"`
	NumPages int `json:"num_pages"`
}
