// Package manifest keeps the resumable JSON record of what a run downloaded.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/source"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrParse marks a manifest that exists but could not be read back.
var ErrParse = errors.New("manifest unreadable")

// TimeLayout matches the timestamps earlier manifests were written with.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Manifest is the on-disk download record. Seasons keep insertion order.
type Manifest struct {
	LastUpdated  string                                    `json:"last_updated"`
	TotalSeasons int                                       `json:"total_seasons"`
	Seasons      *orderedmap.OrderedMap[string, *Season] `json:"seasons"`
}

// Season holds one record per episode attempted in the last run that visited it.
type Season struct {
	TotalEpisodes int       `json:"total_episodes"`
	Episodes      []*Record `json:"episodes"`
}

// Record describes one episode. Filepath is null unless Downloaded.
type Record struct {
	Episode    string            `json:"episode"`
	URL        string            `json:"url"`
	Downloaded bool              `json:"downloaded"`
	Filepath   mo.Option[string] `json:"filepath"`
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{Seasons: orderedmap.New[string, *Season]()}
}

// Load reads the manifest at path. A missing file gives an empty manifest.
// An unreadable or malformed one also gives an empty manifest, together with
// an error wrapping ErrParse for the caller to report.
func Load(path string) (*Manifest, error) {
	fs := filesystem.API()

	exists, err := fs.Exists(path)
	if err != nil {
		return New(), fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if !exists {
		return New(), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return New(), fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return New(), fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if m.Seasons == nil {
		m.Seasons = orderedmap.New[string, *Season]()
	}

	return m, nil
}

// IsDownloaded reports whether a transcript already exists at path.
// Only the filesystem is consulted; manifest contents never decide a skip.
func IsDownloaded(path string) bool {
	exists, err := filesystem.API().Exists(path)
	return err == nil && exists
}

// BeginSeason discards whatever was recorded for label and starts it over.
// A season seen before keeps its position.
func (m *Manifest) BeginSeason(label string, total int) {
	m.Seasons.Set(label, &Season{TotalEpisodes: total, Episodes: []*Record{}})
}

// Record appends the outcome of result to its episode's season.
func (m *Manifest) Record(result *source.Result) {
	label := result.Episode.SeasonLabel()
	season, ok := m.Seasons.Get(label)
	if !ok {
		season = &Season{Episodes: []*Record{}}
		m.Seasons.Set(label, season)
	}

	season.Episodes = append(season.Episodes, &Record{
		Episode:    result.Episode.Title,
		URL:        result.Episode.URL,
		Downloaded: result.Succeeded,
		Filepath:   result.OutputPath,
	})
}

// Downloaded counts the episodes of label recorded as downloaded.
func (m *Manifest) Downloaded(label string) int {
	season, ok := m.Seasons.Get(label)
	if !ok {
		return 0
	}
	return lo.CountBy(season.Episodes, func(r *Record) bool {
		return r.Downloaded
	})
}

// Save stamps the manifest and atomically replaces the file at path.
func (m *Manifest) Save(path string) error {
	m.LastUpdated = time.Now().Format(TimeLayout)
	m.TotalSeasons = m.Seasons.Len()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m); err != nil {
		return err
	}

	return filesystem.WriteAtomic(path, buf.Bytes(), 0o644)
}
