package source

import "github.com/samber/lo"

// Index holds seasons in the order their headings appear on the category page.
type Index struct {
	Seasons []*Season `json:"seasons"`
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Open returns the season labelled label with an empty episode list.
// A label seen before keeps its original position and loses its earlier episodes.
func (i *Index) Open(label string) *Season {
	if season, ok := i.Get(label); ok {
		season.Episodes = nil
		return season
	}

	season := &Season{Label: label}
	i.Seasons = append(i.Seasons, season)
	return season
}

// Get looks a season up by label.
func (i *Index) Get(label string) (*Season, bool) {
	return lo.Find(i.Seasons, func(s *Season) bool {
		return s.Label == label
	})
}

// Labels returns season labels in index order.
func (i *Index) Labels() []string {
	return lo.Map(i.Seasons, func(s *Season, _ int) string {
		return s.Label
	})
}

// Len returns the total number of episodes across all seasons.
func (i *Index) Len() int {
	return lo.SumBy(i.Seasons, func(s *Season) int {
		return len(s.Episodes)
	})
}

// Filter returns a new index holding only the seasons keep accepts. Seasons are shared, not copied.
func (i *Index) Filter(keep func(*Season) bool) *Index {
	return &Index{Seasons: lo.Filter(i.Seasons, func(s *Season, _ int) bool {
		return keep(s)
	})}
}
