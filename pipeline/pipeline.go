// Package pipeline runs the whole scrape: list seasons, download each transcript, write it, record it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/icon"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/manifest"
	"github.com/tscribe-cli/tscribe/query"
	"github.com/tscribe-cli/tscribe/source"
	"github.com/tscribe-cli/tscribe/transcript"
	"github.com/tscribe-cli/tscribe/util"
)

// Run executes one batch. Per-episode failures are recorded and the run goes on.
// Only a failed category fetch or an uncreatable output root abort it.
//
// If ctx is cancelled the remaining episodes are not attempted, but the summary
// is still printed and, in resume mode, the manifest is still saved. The
// returned error is then ctx.Err().
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	out := opts.Out

	fmt.Fprintf(out, "%s Scraping transcript links from %s\n", icon.Get(icon.Search), opts.URL)
	index, err := opts.Source.IndexOf(ctx, opts.URL)
	if err != nil {
		return nil, err
	}
	labels := index.Labels()

	index = query.Filter(index, opts.Seasons)
	if len(opts.Seasons) > 0 && len(index.Seasons) == 0 {
		hintSeasons(out, opts.Seasons, labels)
	}
	printListing(out, index)

	summary := newSummary(index)
	if opts.DryRun {
		return summary, nil
	}

	if err := filesystem.API().MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", transcript.ErrFilesystem, opts.OutputDir, err)
	}

	var (
		record       *manifest.Manifest
		manifestPath = filepath.Join(opts.OutputDir, opts.ManifestName)
	)
	if opts.Resume {
		record, err = manifest.Load(manifestPath)
		if err != nil {
			log.Warnf("starting with an empty manifest: %s", err)
			fmt.Fprintf(out, "%s %s, starting fresh\n", icon.Get(icon.Warn), err)
		}
	}

	runErr := download(ctx, opts, index, record, summary)

	summary.Print(out)

	if record != nil {
		if err := record.Save(manifestPath); err != nil {
			return summary, fmt.Errorf("save manifest: %w", err)
		}
		summary.ManifestPath = manifestPath
		fmt.Fprintf(out, "%s Metadata saved to: %s\n", icon.Get(icon.Manifest), manifestPath)
	}

	return summary, runErr
}

func download(ctx context.Context, opts Options, index *source.Index, record *manifest.Manifest, summary *Summary) error {
	for _, season := range index.Seasons {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(opts.Out, "\n%s Downloading %s (%s)...\n",
			icon.Get(icon.Season), season.Label, util.Quantify(len(season.Episodes), "episode", "episodes"))

		if record != nil {
			record.BeginSeason(season.Label, len(season.Episodes))
		}

		dir := filepath.Join(opts.OutputDir, transcript.SeasonDirname(season.Label))
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			err = fmt.Errorf("%w: create %s: %w", transcript.ErrFilesystem, dir, err)
			log.Errorf("season %q: %s", season.Label, err)
			fmt.Fprintf(opts.Out, "  %s Could not create %s: %s\n", icon.Get(icon.Fail), dir, err)

			for _, episode := range season.Episodes {
				result := source.Failed(episode, err)
				summary.add(result)
				if record != nil {
					record.Record(result)
				}
			}
			continue
		}

		for _, episode := range season.Episodes {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := attempt(ctx, opts, dir, episode)
			summary.add(result)
			if record != nil {
				record.Record(result)
			}

			if err := pause(ctx, opts.Delay); err != nil {
				return err
			}
		}
	}

	return nil
}

func attempt(ctx context.Context, opts Options, dir string, episode *source.Episode) *source.Result {
	entry := log.Episode(episode.SeasonLabel(), episode.Title)
	path := transcript.Path(opts.OutputDir, episode)

	if opts.Resume && manifest.IsDownloaded(path) {
		entry.Info("already downloaded")
		fmt.Fprintf(opts.Out, "  %s Skipping (already downloaded): %s\n", icon.Get(icon.Skip), episode.Title)
		return source.AlreadyPresent(episode, path)
	}

	fmt.Fprintf(opts.Out, "  %s Downloading: %s\n", icon.Get(icon.Download), episode.Title)

	body, err := opts.Source.TranscriptOf(ctx, episode).Get()
	if err != nil {
		fmt.Fprintf(opts.Out, "  %s Could not download %s: %s\n", icon.Get(icon.Fail), episode.Title, err)
		return source.Failed(episode, err)
	}

	written, err := transcript.Write(dir, episode, body)
	if err != nil {
		entry.WithError(err).Error("write failed")
		fmt.Fprintf(opts.Out, "  %s Could not save %s: %s\n", icon.Get(icon.Fail), episode.Title, err)
		return source.Failed(episode, err)
	}

	entry.WithField("path", written).Info("downloaded")
	return source.Downloaded(episode, written)
}

// pause sleeps for d unless ctx ends first.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// hintSeasons explains an empty season filter, pointing at a remembered pattern that would match.
func hintSeasons(w io.Writer, patterns, labels []string) {
	fmt.Fprintf(w, "%s No season matches %s\n", icon.Get(icon.Warn), strings.Join(patterns, ", "))
	for _, pattern := range patterns {
		if suggestion, ok := query.Suggest(pattern, labels).Get(); ok {
			fmt.Fprintf(w, "  did you mean %q?\n", suggestion)
		}
	}
}
