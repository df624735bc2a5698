// Package inline lists transcript links without downloading anything, for scripts and pipes.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/query"
	"github.com/tscribe-cli/tscribe/source"
)

// Run reads the category page and writes the selected links to options.Out.
// Text output is one "season<TAB>title<TAB>url" line per episode.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	index, err := options.Source.IndexOf(ctx, options.URL)
	if err != nil {
		return err
	}

	index = query.Filter(index, options.Seasons)

	if options.Episodes.IsPresent() {
		filter := options.Episodes.MustGet()
		narrowed := source.NewIndex()
		for _, season := range index.Seasons {
			copied := narrowed.Open(season.Label)
			copied.Episodes = filter(season.Episodes)
		}
		index = narrowed
	}

	log.Infof("listing %d links from %s", index.Len(), options.URL)

	if options.Json {
		return writeJson(options.Out, index, options)
	}

	for _, season := range index.Seasons {
		for _, episode := range season.Episodes {
			if _, err := fmt.Fprintf(options.Out, "%s\t%s\t%s\n", season.Label, episode.Title, episode.URL); err != nil {
				return err
			}
		}
	}

	return nil
}
