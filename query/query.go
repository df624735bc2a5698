// Package query selects seasons by loose name and remembers the patterns users type.
package query

import (
	"strings"
	"unicode/utf8"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/source"
	"github.com/tscribe-cli/tscribe/where"
	"golang.org/x/exp/slices"
)

// Select returns the labels chosen by patterns, in the order of labels.
// A pattern equal to a label (ignoring case) selects that label alone;
// otherwise it selects every label it fuzzy-matches. No patterns selects everything.
func Select(labels, patterns []string) []string {
	if len(patterns) == 0 {
		return labels
	}

	chosen := make(map[string]bool)
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if exact, ok := lo.Find(labels, func(l string) bool { return strings.EqualFold(l, pattern) }); ok {
			chosen[exact] = true
			continue
		}

		for _, label := range fuzzy.FindNormalizedFold(pattern, labels) {
			chosen[label] = true
		}
	}

	return lo.Filter(labels, func(l string, _ int) bool {
		return chosen[l]
	})
}

// Filter narrows index to the seasons Select picks.
func Filter(index *source.Index, patterns []string) *source.Index {
	if len(patterns) == 0 {
		return index
	}

	chosen := Select(index.Labels(), patterns)
	return index.Filter(func(s *source.Season) bool {
		return lo.Contains(chosen, s.Label)
	})
}

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*queryRecord)

// Remember stores a season pattern or bumps its rank by weight.
// Nothing is stored when query.remember is off.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.QueryRemember) {
		return nil
	}

	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the remembered pattern closest to q, by edit distance, that selects
// at least one of labels. Patterns too far from q and q itself are never suggested.
func Suggest(q string, labels []string) mo.Option[string] {
	q = sanitize(q)
	limit := lo.Max([]int{2, utf8.RuneCountInString(q) / 3})

	candidates := lo.Filter(remembered(), func(r *queryRecord, _ int) bool {
		return r.Query != q &&
			levenshtein.Distance(q, r.Query) <= limit &&
			len(Select(labels, []string{r.Query})) > 0
	})
	if len(candidates) == 0 {
		return mo.None[string]()
	}

	best := lo.MinBy(candidates, func(a, b *queryRecord) bool {
		return levenshtein.Distance(q, a.Query) < levenshtein.Distance(q, b.Query)
	})
	return mo.Some(best.Query)
}

// remembered returns every stored pattern, highest rank first.
func remembered() []*queryRecord {
	if !viper.GetBool(key.QueryRemember) {
		return nil
	}

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil
	}

	records := lo.Values(cached)
	sortByRank(records)
	return records
}

func sortByRank(records []*queryRecord) {
	slices.SortFunc(records, func(a, b *queryRecord) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})
}

// SuggestMany returns remembered patterns fuzzy-matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.QueryRemember) {
		return []string{}
	}

	q = sanitize(q)
	var records []*queryRecord

	if prev, ok := suggestionCache[q]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		sortByRank(records)
		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
