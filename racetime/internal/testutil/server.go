package testutil

import (
	"net/http"

	"codeberg.org/clambin/go-common/testutils"
)

// Handler serves Server's fixtures, matching on the request's path only: query parameters are ignored.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.Clone(r.Context())
		r.URL.RawQuery = ""
		r.RequestURI = r.URL.RequestURI()
		Server.ServeHTTP(w, r)
	})
}

// Server replays the fixtures below, keyed by path.
var Server = testutils.TestServer{Responses: map[string]testutils.PathResponse{
	"/races/data":                 {http.MethodGet: testutils.Response{Body: AllRacesResponse, StatusCode: http.StatusOK}},
	"/alttp/races/data":           {http.MethodGet: testutils.Response{Body: PastRacesResponse, StatusCode: http.StatusOK}},
	"/smz3/races/data":            {http.MethodGet: testutils.Response{Body: PastRacesWithEntrantsResponse, StatusCode: http.StatusOK}},
	"/alttp/leaderboards/data":    {http.MethodGet: testutils.Response{Body: LeaderboardsResponse, StatusCode: http.StatusOK}},
	"/user/search":                {http.MethodGet: testutils.Response{Body: UserSearchResponse, StatusCode: http.StatusOK}},
	"/user/xldAMBlqvY3aOP57/data": {http.MethodGet: testutils.Response{Body: UserDataResponse, StatusCode: http.StatusOK}},
	"/unknown/races/data":         {http.MethodGet: testutils.Response{Body: NotFoundPage, StatusCode: http.StatusNotFound}},
}}

// NotFoundPage is what racetime.gg returns for unknown resources: its user-facing 404 page, not JSON.
const NotFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><title>Page not found | racetime.gg</title></head>
<body><h1>Page not found</h1><p>The page you requested does not exist.</p></body>
</html>`

const AllRacesResponse = `{
  "races": [
    {
      "name": "ff7/gnarly-waluigi-2626",
      "status": {
        "value": "in_progress",
        "verbose_value": "In progress",
        "help_text": "Race is in progress"
      },
      "url": "/ff7/gnarly-waluigi-2626",
      "data_url": "/ff7/gnarly-waluigi-2626/data",
      "goal": {
        "name": "No Major Glitches",
        "custom": false
      },
      "info": "The NMS Showdown!!!",
      "entrants_count": 9,
      "entrants_count_finished": 5,
      "entrants_count_inactive": 3,
      "opened_at": "2022-10-22T13:40:37.747Z",
      "started_at": "2022-10-22T14:45:42.204Z",
      "time_limit": "P1DT00H00M00S",
      "category": {
        "name": "Final Fantasy VII",
        "short_name": "FF7",
        "slug": "ff7",
        "url": "/ff7",
        "data_url": "/ff7/data",
        "image": "https://racetime.gg/media/cover-2561.png"
      }
    },
    {
      "name": "alttp/clever-link-0001",
      "status": {
        "value": "open",
        "verbose_value": "Open",
        "help_text": "Anyone may join this race"
      },
      "url": "/alttp/clever-link-0001",
      "data_url": "/alttp/clever-link-0001/data",
      "goal": {
        "name": "Beat the game",
        "custom": false
      },
      "info": "",
      "entrants_count": 2,
      "entrants_count_finished": 0,
      "entrants_count_inactive": 0,
      "opened_at": "2022-10-22T15:01:02.003Z",
      "started_at": null,
      "time_limit": "P1DT00H00M00S",
      "category": {
        "name": "The Legend of Zelda: A Link to the Past",
        "short_name": "ALttP",
        "slug": "alttp",
        "url": "/alttp",
        "data_url": "/alttp/data",
        "image": "https://racetime.gg/media/alttp.png"
      }
    }
  ]
}`

const PastRacesResponse = `{
  "count": 2,
  "num_pages": 1,
  "races": [
    {
      "name": "alttp/sleepy-zelda-4321",
      "status": {
        "value": "finished",
        "verbose_value": "Finished",
        "help_text": "This race has been completed"
      },
      "url": "/alttp/sleepy-zelda-4321",
      "data_url": "/alttp/sleepy-zelda-4321/data",
      "goal": {
        "name": "Beat the game",
        "custom": false
      },
      "info": "weekly",
      "entrants_count": 4,
      "entrants_count_finished": 3,
      "entrants_count_inactive": 1,
      "opened_at": "2022-10-20T18:00:00.000Z",
      "started_at": "2022-10-20T18:30:00.000Z",
      "time_limit": "P1DT00H00M00S"
    },
    {
      "name": "alttp/brave-ganon-1234",
      "status": {
        "value": "cancelled",
        "verbose_value": "Cancelled",
        "help_text": "This race has been cancelled"
      },
      "url": "/alttp/brave-ganon-1234",
      "data_url": "/alttp/brave-ganon-1234/data",
      "goal": {
        "name": "All dungeons",
        "custom": true
      },
      "info": "",
      "entrants_count": 1,
      "entrants_count_finished": 0,
      "entrants_count_inactive": 1,
      "opened_at": "2022-10-19T10:00:00.000Z",
      "started_at": null,
      "time_limit": "P1DT00H00M00S"
    }
  ]
}`

const PastRacesWithEntrantsResponse = `{
  "count": 1,
  "num_pages": 1,
  "races": [
    {
      "name": "smz3/quick-samus-2222",
      "status": {
        "value": "finished",
        "verbose_value": "Finished",
        "help_text": "This race has been completed"
      },
      "url": "/smz3/quick-samus-2222",
      "data_url": "/smz3/quick-samus-2222/data",
      "goal": {
        "name": "Normal",
        "custom": false
      },
      "info": "",
      "entrants_count": 2,
      "entrants_count_finished": 1,
      "entrants_count_inactive": 1,
      "opened_at": "2022-10-23T02:00:00.000Z",
      "started_at": "2022-10-23T02:33:56.194Z",
      "time_limit": "P1DT00H00M00S",
      "entrants": [
        {
          "user": {
            "id": "xldAMBlqvY3aOP57",
            "full_name": "fox#0123",
            "name": "fox",
            "discriminator": "0123",
            "url": "/user/xldAMBlqvY3aOP57/fox",
            "avatar": null,
            "pronouns": "they/them",
            "flair": "moderator monthly-champion",
            "twitch_name": "foxruns",
            "twitch_display_name": "FoxRuns",
            "twitch_channel": "https://www.twitch.tv/foxruns",
            "can_moderate": false
          },
          "team": null,
          "status": {
            "value": "done",
            "verbose_value": "Finished",
            "help_text": "Finished the race."
          },
          "finish_time": "P0DT01H29M21.729469S",
          "finished_at": "2022-10-23T04:03:17.923Z",
          "place": 1,
          "place_ordinal": "1st",
          "score": 1586,
          "score_change": null,
          "comment": null,
          "has_comment": false,
          "stream_live": true,
          "stream_override": false,
          "actions": ["add_comment"]
        },
        {
          "user": {
            "id": "Zb3dk6Vq8WpOYQwX",
            "full_name": "hare#9876",
            "name": "hare",
            "discriminator": "9876",
            "url": "/user/Zb3dk6Vq8WpOYQwX/hare",
            "avatar": "https://racetime.gg/media/hare.png",
            "pronouns": null,
            "flair": "",
            "twitch_name": null,
            "twitch_display_name": null,
            "twitch_channel": null,
            "can_moderate": false
          },
          "team": null,
          "status": {
            "value": "dnf",
            "verbose_value": "Did not finish",
            "help_text": "Did not finish the race."
          },
          "finish_time": null,
          "finished_at": null,
          "place": null,
          "place_ordinal": null,
          "score": 1412,
          "score_change": -12,
          "comment": "reset",
          "has_comment": true,
          "stream_live": false,
          "stream_override": false,
          "actions": []
        }
      ]
    }
  ]
}`

const LeaderboardsResponse = `{
  "leaderboards": [
    {
      "goal": "Beat the game",
      "num_ranked": 2,
      "rankings": [
        {
          "user": {
            "id": "xldAMBlqvY3aOP57",
            "full_name": "fox#0123",
            "name": "fox",
            "discriminator": "0123",
            "url": "/user/xldAMBlqvY3aOP57/fox",
            "avatar": null,
            "pronouns": null,
            "flair": "",
            "twitch_name": null,
            "twitch_display_name": null,
            "twitch_channel": null,
            "can_moderate": false
          },
          "place": 1,
          "place_ordinal": "1st",
          "score": 1586,
          "best_time": "P0DT01H29M21S",
          "times_raced": 41
        },
        {
          "user": {
            "id": "Zb3dk6Vq8WpOYQwX",
            "full_name": "hare#9876",
            "name": "hare",
            "discriminator": "9876",
            "url": "/user/Zb3dk6Vq8WpOYQwX/hare",
            "avatar": null,
            "pronouns": null,
            "flair": "",
            "twitch_name": null,
            "twitch_display_name": null,
            "twitch_channel": null,
            "can_moderate": false
          },
          "place": 2,
          "place_ordinal": "2nd",
          "score": 1412,
          "best_time": null,
          "times_raced": 3
        }
      ]
    }
  ]
}`

const UserSearchResponse = `{
  "results": [
    {
      "id": "xldAMBlqvY3aOP57",
      "full_name": "fox#0123",
      "name": "fox",
      "discriminator": "0123",
      "url": "/user/xldAMBlqvY3aOP57/fox",
      "avatar": null,
      "pronouns": "they/them",
      "flair": "moderator",
      "twitch_name": "foxruns",
      "twitch_display_name": "FoxRuns",
      "twitch_channel": "https://www.twitch.tv/foxruns",
      "can_moderate": false
    },
    {
      "id": "Qw8ERt5yUi0oPa1s",
      "full_name": "foxtrot#4444",
      "name": "foxtrot",
      "discriminator": "4444",
      "url": "/user/Qw8ERt5yUi0oPa1s/foxtrot",
      "avatar": null,
      "pronouns": null,
      "flair": "",
      "twitch_name": null,
      "twitch_display_name": null,
      "twitch_channel": null,
      "can_moderate": false
    }
  ]
}`

const UserDataResponse = `{
  "id": "xldAMBlqvY3aOP57",
  "full_name": "fox#0123",
  "name": "fox",
  "discriminator": "0123",
  "url": "/user/xldAMBlqvY3aOP57/fox",
  "avatar": null,
  "pronouns": "they/them",
  "flair": "moderator monthly-champion moderator",
  "twitch_name": "foxruns",
  "twitch_display_name": "FoxRuns",
  "twitch_channel": "https://www.twitch.tv/foxruns",
  "can_moderate": true,
  "stats": {
    "joined": 120,
    "first": 41,
    "second": 30,
    "third": 12,
    "forfeits": 7
  },
  "teams": []
}`
