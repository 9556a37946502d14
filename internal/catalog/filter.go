package catalog

import (
	"strings"
	"time"

	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Filter is one search specification as it arrives from the search screen.
// Bounds are raw strings on purpose: a half-typed or junk value must disable
// that bound, never error.
type Filter struct {
	Query     string `form:"q" json:"q"`
	Category  string `form:"category" json:"category"`
	MinPrice  string `form:"min_price" json:"min_price"`
	MaxPrice  string `form:"max_price" json:"max_price"`
	StartDate string `form:"start" json:"start"`
	EndDate   string `form:"end" json:"end"`
}

// Result holds the matches for both tabs, in the catalog's original order.
type Result struct {
	Gigs    []models.Gig    `json:"gigs"`
	Artists []models.Artist `json:"artists"`
}

// compiled is the parsed form of a Filter. Unset and unparseable bounds stay
// nil and are not enforced.
type compiled struct {
	query    string
	category string
	minPrice *decimal.Decimal
	maxPrice *decimal.Decimal
	start    *time.Time
	end      *time.Time
}

func (f Filter) compile() compiled {
	c := compiled{
		query:    strings.ToLower(strings.TrimSpace(f.Query)),
		category: strings.TrimSpace(f.Category),
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(f.MinPrice)); err == nil {
		c.minPrice = &d
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(f.MaxPrice)); err == nil {
		c.maxPrice = &d
	}
	if t, err := parseDate(f.StartDate); err == nil {
		c.start = &t
	}
	if t, err := parseDate(f.EndDate); err == nil {
		c.end = &t
	}
	return c
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (c compiled) categoryActive() bool {
	return c.category != "" && !strings.EqualFold(c.category, CategoryAll)
}

// Apply filters the given snapshots. It is a pure function: the same catalog
// and filter always produce the same result, input order is preserved, and
// the inputs are never mutated.
func (f Filter) Apply(gigs []models.Gig, artists []models.Artist) Result {
	c := f.compile()

	res := Result{
		Gigs:    make([]models.Gig, 0, len(gigs)),
		Artists: make([]models.Artist, 0, len(artists)),
	}
	for _, g := range gigs {
		if c.matchGig(g) {
			res.Gigs = append(res.Gigs, g)
		}
	}
	for _, a := range artists {
		if c.matchArtist(a) {
			res.Artists = append(res.Artists, a)
		}
	}
	return res
}

func (c compiled) matchGig(g models.Gig) bool {
	if c.query != "" &&
		!strings.Contains(strings.ToLower(g.Title), c.query) &&
		!strings.Contains(strings.ToLower(g.Description), c.query) {
		return false
	}
	if c.categoryActive() && !strings.EqualFold(g.Category, c.category) {
		return false
	}
	if c.minPrice != nil && g.BasePrice.LessThan(*c.minPrice) {
		return false
	}
	if c.maxPrice != nil && g.BasePrice.GreaterThan(*c.maxPrice) {
		return false
	}
	if c.start != nil && g.CreatedAt.Before(*c.start) {
		return false
	}
	if c.end != nil && g.CreatedAt.After(*c.end) {
		return false
	}
	return true
}

func (c compiled) matchArtist(a models.Artist) bool {
	if c.query != "" &&
		!strings.Contains(strings.ToLower(a.Name), c.query) &&
		!strings.Contains(strings.ToLower(a.Bio), c.query) {
		return false
	}
	if c.categoryActive() {
		matched := false
		for _, tag := range a.Categories {
			if strings.EqualFold(tag, c.category) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
