// Package source defines the transcript index model and the interface scrapers satisfy.
package source

import (
	"context"

	"github.com/samber/mo"
)

// Source reads a category listing and the transcript pages it links to.
type Source interface {
	// Name returns the display name of the site profile in use.
	Name() string

	// ID returns the profile identifier.
	ID() string

	// IndexOf fetches the category page at url and groups its transcript links by season.
	IndexOf(ctx context.Context, url string) (*Index, error)

	// TranscriptOf downloads an episode page and renders its transcript body as text.
	TranscriptOf(ctx context.Context, episode *Episode) mo.Result[string]
}
