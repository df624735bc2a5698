package pipeline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/color"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/source"
	"github.com/tscribe-cli/tscribe/style"
	"github.com/tscribe-cli/tscribe/util"
)

// SeasonSummary tallies one season. Downloaded includes episodes skipped because their file existed.
type SeasonSummary struct {
	Label      string
	Total      int
	Downloaded int
	Skipped    int
	Failed     int
}

// Summary is what a Run did.
type Summary struct {
	Seasons      []*SeasonSummary
	Results      []*source.Result
	ManifestPath string
}

func newSummary(index *source.Index) *Summary {
	return &Summary{
		Seasons: lo.Map(index.Seasons, func(s *source.Season, _ int) *SeasonSummary {
			return &SeasonSummary{Label: s.Label, Total: len(s.Episodes)}
		}),
	}
}

func (s *Summary) add(result *source.Result) {
	s.Results = append(s.Results, result)

	season, ok := lo.Find(s.Seasons, func(ss *SeasonSummary) bool {
		return ss.Label == result.Episode.SeasonLabel()
	})
	if !ok {
		return
	}

	switch {
	case result.Skipped:
		season.Skipped++
		season.Downloaded++
	case result.Succeeded:
		season.Downloaded++
	default:
		season.Failed++
	}
}

// Found is the number of episodes listed across all seasons.
func (s *Summary) Found() int {
	return lo.SumBy(s.Seasons, func(ss *SeasonSummary) int { return ss.Total })
}

// Downloaded counts episodes whose transcript is on disk after the run.
func (s *Summary) Downloaded() int {
	return lo.SumBy(s.Seasons, func(ss *SeasonSummary) int { return ss.Downloaded })
}

func (s *Summary) Skipped() int {
	return lo.SumBy(s.Seasons, func(ss *SeasonSummary) int { return ss.Skipped })
}

func (s *Summary) Failed() int {
	return lo.SumBy(s.Seasons, func(ss *SeasonSummary) int { return ss.Failed })
}

// Print writes the per-season and overall download counts.
func (s *Summary) Print(w io.Writer) {
	bar := progress.New(
		progress.WithGradient(color.GradientStart, color.GradientEnd),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintln(w, style.Bold("DOWNLOAD SUMMARY"))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	lines := lo.Map(s.Seasons, func(ss *SeasonSummary, _ int) string {
		return fmt.Sprintf("%s: %d/%d downloaded", ss.Label, ss.Downloaded, ss.Total)
	})
	width := util.Max(lo.Map(lines, func(l string, _ int) int { return utf8.RuneCountInString(l) })...)
	for i, season := range s.Seasons {
		ratio := 0.0
		if season.Total > 0 {
			ratio = float64(season.Downloaded) / float64(season.Total)
		}

		fmt.Fprintf(w, "%s %s", util.PadRight(lines[i], width), bar.ViewAs(ratio))
		if season.Failed > 0 {
			fmt.Fprintf(w, " %s", style.Fg(color.Red)(fmt.Sprintf("%d failed", season.Failed)))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\n%s Total: %d/%d transcripts downloaded\n", icon.Get(icon.Success), s.Downloaded(), s.Found())
	if skipped := s.Skipped(); skipped > 0 {
		fmt.Fprintln(w, style.Faint(fmt.Sprintf("%d already present", skipped)))
	}
}

func printListing(w io.Writer, index *source.Index) {
	for _, season := range index.Seasons {
		fmt.Fprintf(w, "%s: %d transcripts\n", season.Label, len(season.Episodes))
	}
	fmt.Fprintf(w, "Total transcripts found: %d\n", index.Len())
}
