// Package scraper turns category and transcript pages into an index and plain text.
package scraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/network"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/source"
)

var (
	// ErrFetch wraps any failure to retrieve a page.
	ErrFetch = errors.New("fetch failed")
	// ErrContentNotFound means the page has no element matching the content selector.
	ErrContentNotFound = errors.New("transcript content not found")
)

// Scraper implements source.Source for one provider.
type Scraper struct {
	fetcher  network.Fetcher
	provider *provider.Provider
}

// New returns a scraper reading pages through fetcher.
func New(fetcher network.Fetcher, p *provider.Provider) *Scraper {
	return &Scraper{fetcher: fetcher, provider: p}
}

func (s *Scraper) Name() string {
	return s.provider.Name
}

func (s *Scraper) ID() string {
	return s.provider.ID
}

// IndexOf fetches the category page and extracts its season index.
// Links are resolved against rawURL.
func (s *Scraper) IndexOf(ctx context.Context, rawURL string) (*source.Index, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse category url: %w", err)
	}

	doc, err := s.document(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return ExtractIndex(doc, base, s.provider), nil
}

// TranscriptOf downloads the episode page and renders its content block.
// Failures are logged and returned, never panicked.
func (s *Scraper) TranscriptOf(ctx context.Context, episode *source.Episode) mo.Result[string] {
	text, err := s.transcript(ctx, episode.URL)
	if err != nil {
		log.Episode(episode.SeasonLabel(), episode.Title).
			WithField("url", episode.URL).
			Warnf("transcript unavailable: %s", err)
		return mo.Err[string](err)
	}

	return mo.Ok(text)
}

func (s *Scraper) transcript(ctx context.Context, rawURL string) (string, error) {
	doc, err := s.document(ctx, rawURL)
	if err != nil {
		return "", err
	}

	content := doc.Find(s.provider.ContentSelector).First()
	if content.Length() == 0 {
		return "", fmt.Errorf("%w: no %q on %s", ErrContentNotFound, s.provider.ContentSelector, rawURL)
	}

	return Text(content.Nodes[0]), nil
}

func (s *Scraper) document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := s.fetcher.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrFetch, rawURL, err)
	}

	return doc, nil
}
