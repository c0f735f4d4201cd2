package racetime_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/clambin/racetime/racetime"
)

func ExampleQuery() {
	c, err := racetime.New(racetime.WithUserAgent("my-bot/1.0"))
	if err != nil {
		panic(err)
	}

	// decode the response into the provided response type ...
	races, err := racetime.Query[racetime.Races[racetime.RaceWithPartialCategory]](context.Background(), c, racetime.AllRaces{})
	if err != nil {
		panic(err)
	}
	for _, race := range races.Races {
		fmt.Println(race.Category.ShortName, race.Name, race.Status.VerboseValue)
	}

	// ... or into your own
	type raceNames struct {
		Races []struct {
			Name string `json:"name"`
		} `json:"races"`
	}
	names, err := racetime.Query[raceNames](context.Background(), c, racetime.AllRaces{})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(names.Races), "races")
}

func ExampleClient_PastCategoryRacesWithEntrants() {
	c, _ := racetime.New()

	page, err := c.PastCategoryRacesWithEntrants(context.Background(), racetime.NewPastCategoryRaces("alttp").WithPage(2))
	if err != nil {
		panic(err)
	}
	fmt.Printf("page 2 of %d\n", page.NumPages)
	for _, race := range page.Races.Races {
		for _, entrant := range race.Entrants {
			if entrant.Place != nil {
				fmt.Println(race.Name, *entrant.PlaceOrdinal, entrant.User.FullName)
			}
		}
	}
}

func ExampleNewUserSearch() {
	c, _ := racetime.New(racetime.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	scrim := 123
	search, err := racetime.NewUserSearch("fox", &scrim) // searches for "fox#0123"
	if err != nil {
		panic(err)
	}
	users, err := c.SearchUsers(context.Background(), search)
	if err != nil {
		panic(err)
	}
	for _, user := range users {
		fmt.Println(user.FullName, user.URL)
	}
}

func ExampleKindOf() {
	c, _ := racetime.New()

	_, err := c.UserData(context.Background(), "no-such-user")
	switch {
	case err == nil:
		fmt.Println("found")
	case errors.Is(err, racetime.ErrNotFound):
		fmt.Println("no such user")
	case racetime.KindOf(err) == racetime.KindTransport:
		fmt.Println("network problem, try again later:", err)
	default:
		fmt.Println("failed:", err)
	}
}
