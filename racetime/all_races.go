package racetime

var _ Endpoint = AllRaces{}

// AllRaces lists all races currently open or in progress. Its response decodes into Races[RaceWithPartialCategory].
type AllRaces struct{}

func (AllRaces) RelativePath() string {
	return "races/data"
}
