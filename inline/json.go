package inline

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/source"
)

// Season is one season in the JSON listing.
type Season struct {
	Label    string            `json:"label" jsonschema:"description=Trimmed heading text of the season"`
	Episodes []*source.Episode `json:"episodes"`
}

// Output is the JSON document printed by a listing.
type Output struct {
	URL     string    `json:"url" jsonschema:"description=Category page the links were read from"`
	Source  string    `json:"source" jsonschema:"description=Site profile used to read the page"`
	Total   int       `json:"total"`
	Seasons []*Season `json:"seasons"`
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	return jsonschema.Reflect(&Output{})
}

func writeJson(w io.Writer, index *source.Index, options *Options) error {
	output := &Output{
		URL:    options.URL,
		Source: options.Source.ID(),
		Total:  index.Len(),
		Seasons: lo.Map(index.Seasons, func(s *source.Season, _ int) *Season {
			return &Season{Label: s.Label, Episodes: lo.Ternary(s.Episodes == nil, []*source.Episode{}, s.Episodes)}
		}),
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
