/*
Package racetime provides a client for the [racetime.gg public API].

All endpoints of the public API are read-only GET endpoints that need no authentication. Each endpoint is described
by a small value implementing [Endpoint]: [AllRaces], [PastCategoryRaces], [Leaderboards], [UserSearch] and [UserData].
[Query] calls any Endpoint and decodes the JSON response into the type of your choosing:

	c, _ := racetime.New()
	races, err := racetime.Query[racetime.Races[racetime.RaceWithPartialCategory]](ctx, c, racetime.AllRaces{})

The Client also provides typed methods for each endpoint (e.g. [Client.AllRaces]). The response types in this package
are provided for convenience: any type that encoding/json can decode the response into will do.

Errors returned by the Client are of type [*Error]. Use errors.Is with the package's sentinel errors, or [KindOf],
to distinguish a missing resource ([ErrNotFound]) from a network problem ([ErrTransport]) or a schema mismatch
([ErrDeserialization]).

Pagination is not handled: use [PastCategoryRaces.WithPage] to request a specific page.

[racetime.gg public API]: https://github.com/racetimeGG/racetime-app/wiki/Public-API-endpoints
*/
package racetime
