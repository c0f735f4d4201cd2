package racetime_test

import (
	"encoding/json"
	"testing"

	"github.com/clambin/racetime/racetime"
	"github.com/clambin/racetime/racetime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRaces_AllRaces(t *testing.T) {
	var races racetime.Races[racetime.RaceWithPartialCategory]
	require.NoError(t, json.Unmarshal([]byte(testutil.AllRacesResponse), &races))
	require.Len(t, races.Races, 2)

	want := racetime.RaceWithPartialCategory{
		Race: racetime.Race{
			Name:                  "ff7/gnarly-waluigi-2626",
			Status:                racetime.Status{Value: "in_progress", VerboseValue: "In progress", HelpText: "Race is in progress"},
			URL:                   "/ff7/gnarly-waluigi-2626",
			DataURL:               "/ff7/gnarly-waluigi-2626/data",
			Goal:                  racetime.Goal{Name: "No Major Glitches", Custom: false},
			Info:                  "The NMS Showdown!!!",
			EntrantsCount:         9,
			EntrantsCountFinished: 5,
			EntrantsCountInactive: 3,
			OpenedAt:              "2022-10-22T13:40:37.747Z",
			StartedAt:             ptr("2022-10-22T14:45:42.204Z"),
			TimeLimit:             "P1DT00H00M00S",
		},
		Category: racetime.PartialCategory{
			Name:      "Final Fantasy VII",
			ShortName: "FF7",
			Slug:      "ff7",
			URL:       "/ff7",
			DataURL:   "/ff7/data",
			Image:     "https://racetime.gg/media/cover-2561.png",
		},
	}
	assert.Equal(t, want, races.Races[0])
	assert.Nil(t, races.Races[1].StartedAt)
	assert.Equal(t, "alttp", races.Races[1].Category.Slug)

	// the same payload decodes into the plain Race shape
	var plain racetime.Races[racetime.Race]
	require.NoError(t, json.Unmarshal([]byte(testutil.AllRacesResponse), &plain))
	require.Len(t, plain.Races, 2)
	assert.Equal(t, want.Race, plain.Races[0])
}

func TestRacesPaginated(t *testing.T) {
	var page racetime.RacesPaginated[racetime.Race]
	require.NoError(t, json.Unmarshal([]byte(testutil.PastRacesResponse), &page))
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 1, page.NumPages)
	require.Len(t, page.Races.Races, 2)
	assert.Equal(t, "alttp/sleepy-zelda-4321", page.Races.Races[0].Name)
	assert.True(t, page.Races.Races[1].Goal.Custom)
}

func TestRaceWithEntrants(t *testing.T) {
	var page racetime.RacesPaginated[racetime.RaceWithEntrants]
	require.NoError(t, json.Unmarshal([]byte(testutil.PastRacesWithEntrantsResponse), &page))
	require.Len(t, page.Races.Races, 1)

	race := page.Races.Races[0]
	assert.Equal(t, "smz3/quick-samus-2222", race.Name)
	assert.Equal(t, "finished", race.Status.Value)
	assert.Equal(t, 2, race.EntrantsCount)
	require.Len(t, race.Entrants, 2)

	winner := race.Entrants[0]
	assert.Equal(t, "fox", winner.User.Name)
	assert.Equal(t, "0123", winner.User.Discriminator)
	assert.Equal(t, []string{"moderator", "monthly-champion"}, winner.User.Flairs())
	assert.Equal(t, ptr("P0DT01H29M21.729469S"), winner.FinishTime)
	assert.Equal(t, ptr(1), winner.Place)
	assert.Equal(t, ptr("1st"), winner.PlaceOrdinal)
	assert.Equal(t, ptr(1586), winner.Score)
	assert.Nil(t, winner.ScoreChange)
	assert.Nil(t, winner.Comment)
	assert.True(t, winner.StreamLive)

	dnf := race.Entrants[1]
	assert.Equal(t, "dnf", dnf.Status.Value)
	assert.Nil(t, dnf.Place)
	assert.Nil(t, dnf.FinishTime)
	assert.Equal(t, ptr(-12), dnf.ScoreChange)
	assert.Equal(t, ptr("reset"), dnf.Comment)
	assert.True(t, dnf.HasComment)
	assert.Empty(t, dnf.User.Flairs())
}

func TestLeaderboardsResult(t *testing.T) {
	var result racetime.LeaderboardsResult
	require.NoError(t, json.Unmarshal([]byte(testutil.LeaderboardsResponse), &result))
	require.Len(t, result.Leaderboards, 1)

	lb := result.Leaderboards[0]
	assert.Equal(t, "Beat the game", lb.Goal)
	assert.Equal(t, 2, lb.NumRanked)
	require.Len(t, lb.Rankings, 2)
	assert.Equal(t, racetime.Ranking{
		User:         lb.Rankings[0].User,
		Place:        1,
		PlaceOrdinal: "1st",
		Score:        1586,
		BestTime:     ptr("P0DT01H29M21S"),
		TimesRaced:   41,
	}, lb.Rankings[0])
	assert.Equal(t, "fox#0123", lb.Rankings[0].User.FullName)
	assert.Nil(t, lb.Rankings[1].BestTime)
}

func TestUserSearchResult(t *testing.T) {
	var result racetime.UserSearchResult
	require.NoError(t, json.Unmarshal([]byte(testutil.UserSearchResponse), &result))
	require.Len(t, result.Results, 2)
	assert.Equal(t, "fox", result.Results[0].Name)
	assert.Equal(t, ptr("they/them"), result.Results[0].Pronouns)
	assert.Equal(t, ptr("FoxRuns"), result.Results[0].TwitchDisplayName)
	assert.Nil(t, result.Results[1].Avatar)
}

func TestUserProfile(t *testing.T) {
	var profile racetime.UserProfile
	require.NoError(t, json.Unmarshal([]byte(testutil.UserDataResponse), &profile))
	assert.Equal(t, "xldAMBlqvY3aOP57", profile.ID)
	assert.True(t, profile.CanModerate)
	assert.Equal(t, racetime.UserStats{Joined: 120, First: 41, Second: 30, Third: 12, Forfeits: 7}, profile.Stats)
	assert.Equal(t, []string{"moderator", "monthly-champion"}, profile.Flairs())
}
