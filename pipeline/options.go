package pipeline

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/constant"
	"github.com/tscribe-cli/tscribe/source"
)

// Options configures a single Run. Zero values fall back to the documented defaults.
type Options struct {
	// URL of the category page listing transcripts.
	URL string
	// OutputDir is the root every season directory is created under.
	OutputDir string
	// Resume skips episodes whose file exists and keeps a manifest in OutputDir.
	Resume bool
	// ManifestName is the manifest file name inside OutputDir.
	ManifestName string
	// Delay is slept after every episode attempt.
	Delay time.Duration
	// Seasons restricts the run to matching season labels. Empty means all.
	Seasons []string
	// DryRun stops after listing what would be downloaded.
	DryRun bool

	Source source.Source
	Out    io.Writer
}

func (o *Options) normalize() error {
	if o.Source == nil {
		return errors.New("pipeline: no source configured")
	}
	if o.URL == "" {
		return errors.New("pipeline: no category url")
	}

	o.OutputDir = lo.Ternary(o.OutputDir == "", constant.DefaultOutputDir, o.OutputDir)
	o.ManifestName = lo.Ternary(o.ManifestName == "", constant.DefaultManifest, o.ManifestName)
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Delay < 0 {
		o.Delay = 0
	}

	return nil
}
