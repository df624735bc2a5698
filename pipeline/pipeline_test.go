package pipeline

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/manifest"
	"github.com/tscribe-cli/tscribe/network"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/query"
	"github.com/tscribe-cli/tscribe/scraper"
	"github.com/tscribe-cli/tscribe/source"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.NetworkTimeout, 5)
	viper.Set(key.IconsVariant, "plain")
}

const category = `<html><body>
<h2>Season 1</h2>
<table>
  <tr><td><a href="/wiki/Pilot/Transcript">Pilot</a></td></tr>
  <tr><td><a href="/wiki/Slumber_Party_Panic/Transcript">Slumber Party Panic</a></td></tr>
  <tr><td><a href="/wiki/Slumber_Party_Panic">episode page</a></td></tr>
</table>
<h2>Season 2</h2>
<table>
  <tr><td><a href="/wiki/It_Came_from_the_Nightosphere/Transcript">It Came from the Nightosphere</a></td></tr>
  <tr><td><a href="/wiki/Missing/Transcript">Missing</a></td></tr>
</table>
</body></html>`

func newServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/Category_talk:Transcripts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(category))
	})
	for _, name := range []string{"Pilot", "Slumber_Party_Panic", "It_Came_from_the_Nightosphere"} {
		name := name
		mux.HandleFunc("/wiki/"+name+"/Transcript", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<div class="mw-parser-output"><p>` + name + ` line</p></div>`))
		})
	}
	return httptest.NewServer(mux)
}

func options(server *httptest.Server, out *bytes.Buffer) Options {
	return Options{
		URL:       server.URL + "/wiki/Category_talk:Transcripts",
		OutputDir: "/out",
		Source:    scraper.New(network.New(), provider.Fandom),
		Out:       out,
	}
}

// cancelling cancels the run as soon as the first transcript is fetched.
type cancelling struct {
	*scraper.Scraper
	cancel context.CancelFunc
}

func (c cancelling) TranscriptOf(ctx context.Context, episode *source.Episode) mo.Result[string] {
	defer c.cancel()
	return c.Scraper.TranscriptOf(ctx, episode)
}

func countFiles(root string) int {
	count := 0
	_ = filesystem.API().Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && filepath.Ext(path) == ".txt" {
			count++
		}
		return nil
	})
	return count
}

func TestRun(t *testing.T) {
	Convey("Given a wiki with two seasons and one broken link", t, func() {
		filesystem.SetMemMapFs()
		server := newServer()
		defer server.Close()

		var out bytes.Buffer
		opts := options(server, &out)

		Convey("A basic run writes every reachable transcript and keeps going past failures", func() {
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Found(), ShouldEqual, 4)
			So(summary.Downloaded(), ShouldEqual, 3)
			So(summary.Failed(), ShouldEqual, 1)
			So(summary.Results, ShouldHaveLength, 4)

			data, err := filesystem.API().ReadFile("/out/Season_1/Slumber_Party_Panic.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldStartWith, "Episode: Slumber Party Panic\nSource: "+server.URL+"/wiki/Slumber_Party_Panic/Transcript\n")
			So(string(data), ShouldEndWith, "\n\nSlumber_Party_Panic line")

			exists, _ := filesystem.API().Exists("/out/Season_1/Pilot.txt")
			So(exists, ShouldBeTrue)
			exists, _ = filesystem.API().Exists("/out/metadata.json")
			So(exists, ShouldBeFalse)

			text := out.String()
			So(text, ShouldContainSubstring, "Season 1: 2 transcripts")
			So(text, ShouldContainSubstring, "Total transcripts found: 4")
			So(text, ShouldContainSubstring, "Season 2: 1/2 downloaded")
			So(text, ShouldContainSubstring, "Total: 3/4 transcripts downloaded")
		})

		Convey("A resumed run records a manifest and a second run downloads nothing", func() {
			opts.Resume = true

			first, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(first.ManifestPath, ShouldEqual, "/out/metadata.json")
			So(countFiles("/out"), ShouldEqual, 3)

			out.Reset()
			second, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(second.Skipped(), ShouldEqual, 3)
			So(second.Downloaded(), ShouldEqual, 3)
			So(countFiles("/out"), ShouldEqual, 3)
			So(out.String(), ShouldContainSubstring, "Metadata saved to: /out/metadata.json")

			m, err := manifest.Load("/out/metadata.json")
			So(err, ShouldBeNil)
			So(m.TotalSeasons, ShouldEqual, 2)
			So(m.Downloaded("Season 1"), ShouldEqual, 2)
			So(m.Downloaded("Season 2"), ShouldEqual, 1)
		})

		Convey("Deleting a transcript makes it eligible again", func() {
			opts.Resume = true
			_, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(filesystem.API().Remove("/out/Season_1/Pilot.txt"), ShouldBeNil)

			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Skipped(), ShouldEqual, 2)
			exists, _ := filesystem.API().Exists("/out/Season_1/Pilot.txt")
			So(exists, ShouldBeTrue)
		})

		Convey("A malformed manifest is replaced, not fatal", func() {
			opts.Resume = true
			So(filesystem.API().WriteFile("/out/metadata.json", []byte("nope"), 0o644), ShouldBeNil)

			_, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "starting fresh")

			_, err = manifest.Load("/out/metadata.json")
			So(err, ShouldBeNil)
		})

		Convey("A season filter limits the run", func() {
			opts.Seasons = []string{"season 2"}
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Found(), ShouldEqual, 2)
			exists, _ := filesystem.API().Exists("/out/Season_1")
			So(exists, ShouldBeFalse)
		})

		Convey("A dry run only lists", func() {
			opts.DryRun = true
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Found(), ShouldEqual, 4)
			So(countFiles("/out"), ShouldEqual, 0)
		})

		Convey("A cancelled run still saves the manifest", func() {
			opts.Resume = true
			ctx, cancel := context.WithCancel(context.Background())
			opts.Source = cancelling{Scraper: scraper.New(network.New(), provider.Fandom), cancel: cancel}

			summary, err := Run(ctx, opts)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
			So(summary, ShouldNotBeNil)
			So(summary.Results, ShouldHaveLength, 1)
			So(out.String(), ShouldContainSubstring, "DOWNLOAD SUMMARY")
			exists, _ := filesystem.API().Exists("/out/metadata.json")
			So(exists, ShouldBeTrue)
		})
	})
}

func TestRunAborts(t *testing.T) {
	Convey("Given an unreachable category page", t, func() {
		filesystem.SetMemMapFs()
		server := newServer()
		var out bytes.Buffer
		opts := options(server, &out)
		opts.URL = server.URL + "/wiki/Nope"
		defer server.Close()

		Convey("Run fails before touching the disk", func() {
			_, err := Run(context.Background(), opts)
			So(errors.Is(err, scraper.ErrFetch), ShouldBeTrue)
			exists, _ := filesystem.API().Exists("/out")
			So(exists, ShouldBeFalse)
		})
	})

	Convey("Given no source", t, func() {
		_, err := Run(context.Background(), Options{URL: "http://x"})
		So(err, ShouldNotBeNil)
	})
}

func TestSeasonDirectories(t *testing.T) {
	Convey("Given a season without a table and a season whose only link is broken", t, func() {
		filesystem.SetMemMapFs()
		mux := http.NewServeMux()
		mux.HandleFunc("/wiki/Category_talk:Transcripts", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<h2>Season 9</h2><p>none</p>
				<h2>Season 10 (Finale)</h2><table><tr><td><a href="/wiki/Gone/Transcript">Gone</a></td></tr></table>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		var out bytes.Buffer
		opts := options(server, &out)

		Convey("Both season directories exist after the run", func() {
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Failed(), ShouldEqual, 1)

			for _, dir := range []string{"/out/Season_9", "/out/Season_10_Finale"} {
				exists, err := filesystem.API().DirExists(dir)
				So(err, ShouldBeNil)
				So(exists, ShouldBeTrue)
			}
			So(countFiles("/out"), ShouldEqual, 0)
		})

		Convey("A dry run creates nothing", func() {
			opts.DryRun = true
			_, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			exists, _ := filesystem.API().Exists("/out")
			So(exists, ShouldBeFalse)
		})
	})
}

func TestSeasonHint(t *testing.T) {
	Convey("Given a remembered pattern and a filter that matches nothing", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.QueryRemember, true)
		defer viper.Set(key.QueryRemember, false)
		So(query.Remember("season 2", 1), ShouldBeNil)

		server := newServer()
		defer server.Close()

		var out bytes.Buffer
		opts := options(server, &out)
		opts.DryRun = true

		Convey("Nothing is selected and no hint is given for an unrelated pattern", func() {
			opts.Seasons = []string{"zzz"}
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Seasons, ShouldBeEmpty)
			So(out.String(), ShouldContainSubstring, "No season matches zzz")
			So(out.String(), ShouldNotContainSubstring, "did you mean")
		})

		Convey("A typo points at the remembered pattern", func() {
			opts.Seasons = []string{"seasn 2x"}
			summary, err := Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(summary.Seasons, ShouldBeEmpty)
			So(out.String(), ShouldContainSubstring, `did you mean "season 2"?`)
		})
	})
}

func TestPrintListing(t *testing.T) {
	Convey("An empty index lists zero transcripts", t, func() {
		var out bytes.Buffer
		summary := &Summary{}
		summary.Print(&out)
		So(strings.Contains(out.String(), "Total: 0/0 transcripts downloaded"), ShouldBeTrue)
	})
}
