package racetime

import "net/url"

var _ QueryEndpoint = PastCategoryRaces{}

// PastCategoryRaces lists the races of a category that are no longer in progress, one page at a time.
//
// Its response decodes into RacesPaginated[Race], or RacesPaginated[RaceWithEntrants] if entrants are requested.
type PastCategoryRaces struct {
	category     string
	page         int
	showEntrants bool
}

// NewPastCategoryRaces returns a PastCategoryRaces for the category's slug (e.g. "alttp").
// By default, the first page is returned, without entrants.
func NewPastCategoryRaces(category string) PastCategoryRaces {
	return PastCategoryRaces{category: category}
}

// WithShowEntrants sets whether the races' entrants are included in the response.
func (p PastCategoryRaces) WithShowEntrants(showEntrants bool) PastCategoryRaces {
	p.showEntrants = showEntrants
	return p
}

// WithPage selects the page to return. Pages start at 1; any value below 1 selects the server's default page.
func (p PastCategoryRaces) WithPage(page int) PastCategoryRaces {
	p.page = max(page, 0)
	return p
}

// Category returns the category slug.
func (p PastCategoryRaces) Category() string {
	return p.category
}

func (p PastCategoryRaces) RelativePath() string {
	return url.PathEscape(p.category) + "/races/data"
}

func (p PastCategoryRaces) QueryString() (string, error) {
	var q queryParams
	if err := q.add("category", p.category); err != nil {
		return "", err
	}
	if err := q.addIf(p.showEntrants, "show_entrants", p.showEntrants); err != nil {
		return "", err
	}
	if err := q.addIf(p.page > 0, "page", p.page); err != nil {
		return "", err
	}
	return q.String(), nil
}
