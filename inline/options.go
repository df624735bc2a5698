package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tscribe-cli/tscribe/source"
)

// EpisodesFilter narrows the episodes of one season.
type EpisodesFilter func([]*source.Episode) []*source.Episode

// Options configures a listing.
type Options struct {
	Out     io.Writer
	Source  source.Source
	URL     string
	Seasons []string
	Json    bool
	// Episodes is applied to every selected season.
	Episodes mo.Option[EpisodesFilter]
}

// ParseEpisodesFilter understands:
//
//	first, last, all
//	N        the episode at index N (from 0)
//	A-B      indexes A through B inclusive
//	@text@   titles containing text, ignoring case
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []*source.Episode) []*source.Episode {
			return episodes[:min(1, len(episodes))]
		}, nil
	case "last":
		return func(episodes []*source.Episode) []*source.Episode {
			return episodes[max(0, len(episodes)-1):]
		}, nil
	case "all":
		return func(episodes []*source.Episode) []*source.Episode {
			return episodes
		}, nil
	}

	if len(description) >= 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*source.Episode) []*source.Episode {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || start < 0 || end < start {
			return nil, fmt.Errorf("invalid episode range: %s", description)
		}

		return func(episodes []*source.Episode) []*source.Episode {
			return episodes[min(start, len(episodes)):min(end+1, len(episodes))]
		}, nil
	}

	if idx, err := strconv.Atoi(description); err == nil && idx >= 0 {
		return func(episodes []*source.Episode) []*source.Episode {
			if idx >= len(episodes) {
				return []*source.Episode{}
			}
			return episodes[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
