package scraper

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/source"
)

const base = "https://adventuretime.fandom.com/wiki/Category_talk:Transcripts"

type fakeFetcher map[string]string

func (f fakeFetcher) Get(_ context.Context, u string) ([]byte, error) {
	page, ok := f[u]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return []byte(page), nil
}

func mustDoc(page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		panic(err)
	}
	return doc
}

func extract(page string) *source.Index {
	u, _ := url.Parse(base)
	return ExtractIndex(mustDoc(page), u, provider.Fandom)
}

func TestExtractIndex(t *testing.T) {
	Convey("Given a category page", t, func() {
		Convey("Only links ending in /Transcript are kept", func() {
			index := extract(`<h2>Season 1</h2><table>
				<tr><td><a href="/wiki/A/Transcript">A</a></td></tr>
				<tr><td><a href="/wiki/B/Transcript">B</a></td></tr>
				<tr><td><a href="/wiki/C/Transcript">C</a></td></tr>
				<tr><td><a href="/wiki/A">A page</a></td></tr>
				<tr><td><a href="/wiki/Transcript/Talk">talk</a></td></tr>
			</table>`)

			So(index.Labels(), ShouldResemble, []string{"Season 1"})
			season := index.Seasons[0]
			So(season.Episodes, ShouldHaveLength, 3)
			So(season.Episodes[0].URL, ShouldEqual, "https://adventuretime.fandom.com/wiki/A/Transcript")
			So(season.Episodes[2].Title, ShouldEqual, "C")
		})

		Convey("Seasons follow heading order and non-season headings are ignored", func() {
			index := extract(`
				<h2>Pilot</h2><table><tr><td><a href="/wiki/Pilot/Transcript"> Pilot </a></td></tr></table>
				<h2>Shorts</h2><table><tr><td><a href="/wiki/Short/Transcript">Short</a></td></tr></table>
				<h2>Season 1</h2><table><tr><td><a href="/wiki/SPP/Transcript">Slumber Party Panic</a></td></tr></table>`)

			So(index.Labels(), ShouldResemble, []string{"Pilot", "Season 1"})
			So(index.Seasons[0].Episodes[0].Title, ShouldEqual, "Pilot")
			So(index.Len(), ShouldEqual, 2)
		})

		Convey("A season heading without a following table yields an empty season", func() {
			index := extract(`<h2>Season 9</h2><p>coming soon</p>`)
			So(index.Labels(), ShouldResemble, []string{"Season 9"})
			So(index.Seasons[0].Episodes, ShouldBeEmpty)
		})

		Convey("The next table is found even when it is not a sibling", func() {
			index := extract(`<div><h2>Season 2</h2></div>
				<div class="wrap"><div><table><tr><td><a href="/wiki/X/Transcript">X</a></td></tr></table></div></div>`)
			So(index.Seasons[0].Episodes, ShouldHaveLength, 1)
		})

		Convey("Two season headings can share the next table", func() {
			index := extract(`<h2>Season 3</h2><h2>Season 4</h2>
				<table><tr><td><a href="/wiki/Y/Transcript">Y</a></td></tr></table>`)
			So(index.Seasons, ShouldHaveLength, 2)
			So(index.Seasons[0].Episodes, ShouldHaveLength, 1)
			So(index.Seasons[1].Episodes, ShouldHaveLength, 1)
		})

		Convey("A repeated heading resets its season", func() {
			index := extract(`
				<h2>Season 1</h2><table><tr><td><a href="/wiki/A/Transcript">A</a></td></tr></table>
				<h2>Season 1</h2><table><tr><td><a href="/wiki/B/Transcript">B</a></td></tr></table>`)
			So(index.Seasons, ShouldHaveLength, 1)
			So(index.Seasons[0].Episodes[0].Title, ShouldEqual, "B")
		})

		Convey("No season headings yields an empty index", func() {
			index := extract(`<h2>Navigation</h2><table><tr><td><a href="/wiki/A/Transcript">A</a></td></tr></table>`)
			So(index.Seasons, ShouldBeEmpty)
		})

		Convey("Absolute hrefs are kept as they are", func() {
			index := extract(`<h2>Season 1</h2><table><tr><td><a href="https://other.example/wiki/A/Transcript">A</a></td></tr></table>`)
			So(index.Seasons[0].Episodes[0].URL, ShouldEqual, "https://other.example/wiki/A/Transcript")
		})
	})
}

func TestText(t *testing.T) {
	Convey("Text trims nodes, drops blanks and skips non-visible elements", t, func() {
		doc := mustDoc(`<div class="mw-parser-output">
			<p>  Finn: Hey!  </p>
			<script>var x = 1;</script>
			<style>p { color: red }</style>
			<!-- a comment -->
			<p>Jake: <b>What's up</b>, man?</p>
			<p>   </p>
		</div>`)

		text := Text(doc.Find("div.mw-parser-output").Nodes[0])
		So(text, ShouldEqual, "Finn: Hey!\nJake:\nWhat's up\n, man?")
	})
}

func TestScraper(t *testing.T) {
	Convey("Given a scraper over a fake site", t, func() {
		episodeURL := "https://adventuretime.fandom.com/wiki/Slumber_Party_Panic/Transcript"
		fetcher := fakeFetcher{
			base: `<h2>Season 1</h2><table><tr><td>
				<a href="/wiki/Slumber_Party_Panic/Transcript">Slumber Party Panic</a></td></tr></table>`,
			episodeURL: `<div class="mw-parser-output"><p>Line one</p><p>Line two</p></div>`,
			"https://adventuretime.fandom.com/wiki/Empty/Transcript": `<div class="other">nothing</div>`,
		}
		s := New(fetcher, provider.Fandom)
		ctx := context.Background()

		So(s.ID(), ShouldEqual, "fandom")
		So(s.Name(), ShouldEqual, "Fandom")

		Convey("IndexOf resolves links against the category url", func() {
			index, err := s.IndexOf(ctx, base)
			So(err, ShouldBeNil)
			So(index.Seasons[0].Episodes[0].URL, ShouldEqual, episodeURL)
		})

		Convey("IndexOf reports fetch failures", func() {
			_, err := s.IndexOf(ctx, "https://adventuretime.fandom.com/wiki/Nope")
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
		})

		Convey("TranscriptOf renders the content block", func() {
			result := s.TranscriptOf(ctx, &source.Episode{Title: "Slumber Party Panic", URL: episodeURL})
			So(result.IsOk(), ShouldBeTrue)
			So(result.MustGet(), ShouldEqual, "Line one\nLine two")
		})

		Convey("TranscriptOf fails without a content block", func() {
			result := s.TranscriptOf(ctx, &source.Episode{Title: "Empty", URL: "https://adventuretime.fandom.com/wiki/Empty/Transcript"})
			So(result.IsError(), ShouldBeTrue)
			So(errors.Is(result.Error(), ErrContentNotFound), ShouldBeTrue)
		})

		Convey("TranscriptOf fails on network errors", func() {
			result := s.TranscriptOf(ctx, &source.Episode{Title: "Gone", URL: "https://adventuretime.fandom.com/wiki/Gone/Transcript"})
			So(errors.Is(result.Error(), ErrFetch), ShouldBeTrue)
		})
	})
}
