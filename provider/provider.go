// Package provider describes how to read transcripts from a particular wiki layout.
package provider

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/where"
)

// Provider is a site profile: the selectors and markers the scraper looks for.
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// HeadingSelector matches the headings that may open a season.
	HeadingSelector string `json:"heading_selector"`
	// SeasonTokens are case-sensitive substrings marking a heading as a season.
	SeasonTokens []string `json:"season_tokens"`
	// LinkSuffix is the href suffix identifying transcript links.
	LinkSuffix string `json:"link_suffix"`
	// ContentSelector locates the transcript body on an episode page.
	ContentSelector string `json:"content_selector"`

	IsCustom bool `json:"-"`
}

func (p *Provider) String() string {
	return p.Name
}

// IsSeason reports whether heading text contains any season token.
func (p *Provider) IsSeason(heading string) bool {
	return lo.SomeBy(p.SeasonTokens, func(token string) bool {
		return strings.Contains(heading, token)
	})
}

// Validate checks that every selector is set.
func (p *Provider) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("provider has no id")
	case p.HeadingSelector == "":
		return fmt.Errorf("provider %s: heading_selector is empty", p.ID)
	case len(p.SeasonTokens) == 0:
		return fmt.Errorf("provider %s: season_tokens is empty", p.ID)
	case p.LinkSuffix == "":
		return fmt.Errorf("provider %s: link_suffix is empty", p.ID)
	case p.ContentSelector == "":
		return fmt.Errorf("provider %s: content_selector is empty", p.ID)
	}
	return nil
}

// Fandom reads MediaWiki category pages as served by fandom.com.
var Fandom = &Provider{
	ID:              "fandom",
	Name:            "Fandom",
	HeadingSelector: "h2",
	SeasonTokens:    []string{"Season", "Pilot"},
	LinkSuffix:      "/Transcript",
	ContentSelector: "div.mw-parser-output",
}

// Builtins returns the compiled-in providers.
func Builtins() []*Provider {
	return []*Provider{Fandom}
}

// Customs returns the valid profiles found in where.Providers(). Broken files are logged and skipped.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warnf("reading custom providers: %s", err)
	}
	return providers
}

// All returns builtins followed by customs.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by id or name. Builtins win over customs with the same id.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return p.ID == name || strings.EqualFold(p.Name, name)
	})
}

// CustomProviders loads every *.json profile in where.Providers().
func CustomProviders() ([]*Provider, error) {
	dir := where.Providers()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, f.Name())
		p, err := load(path)
		if err != nil {
			log.Warnf("skipping provider %s: %s", path, err)
			continue
		}

		providers = append(providers, p)
	}

	return providers, nil
}

func load(path string) (*Provider, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Provider
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	p.IsCustom = true

	return &p, p.Validate()
}
