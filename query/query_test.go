package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/source"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.QueryRemember, true)
}

func TestSelect(t *testing.T) {
	labels := []string{"Pilot", "Season 1", "Season 10", "Miniseries (Stakes)"}

	Convey("Given season labels", t, func() {
		Convey("No patterns select everything", func() {
			So(Select(labels, nil), ShouldResemble, labels)
		})

		Convey("An exact label wins over fuzzy matches", func() {
			So(Select(labels, []string{"season 1"}), ShouldResemble, []string{"Season 1"})
		})

		Convey("A partial pattern fuzzy-matches", func() {
			So(Select(labels, []string{"stakes"}), ShouldResemble, []string{"Miniseries (Stakes)"})
			So(Select(labels, []string{"season"}), ShouldResemble, []string{"Season 1", "Season 10"})
		})

		Convey("Results keep label order", func() {
			So(Select(labels, []string{"Season 10", "pilot"}), ShouldResemble, []string{"Pilot", "Season 10"})
		})

		Convey("Nothing matches", func() {
			So(Select(labels, []string{"zzz"}), ShouldBeEmpty)
		})
	})
}

func TestFilter(t *testing.T) {
	Convey("Filter narrows an index", t, func() {
		index := source.NewIndex()
		index.Open("Pilot")
		index.Open("Season 1")

		So(Filter(index, nil), ShouldEqual, index)
		So(Filter(index, []string{"pilot"}).Labels(), ShouldResemble, []string{"Pilot"})
	})
}

func TestQuery(t *testing.T) {
	Convey("Given remembered patterns", t, func() {
		So(Remember("season 1", 1), ShouldBeNil)
		So(Remember("Season 2", 10), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("sea")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "season 2")
		})

		Convey("Suggest offers the closest pattern that selects a label", func() {
			labels := []string{"Pilot", "Season 1", "Season 2"}
			So(Suggest("seasn 2x", labels).MustGet(), ShouldEqual, "season 2")
			So(Suggest("season 1x", labels).MustGet(), ShouldEqual, "season 1")
			So(Suggest("zzz", labels).IsAbsent(), ShouldBeTrue)
			So(Suggest("season 2", []string{"Season 2"}).IsAbsent(), ShouldBeTrue)
			So(Suggest("seasn 2x", []string{"Pilot"}).IsAbsent(), ShouldBeTrue)
		})

		Convey("Nothing is suggested when remembering is off", func() {
			viper.Set(key.QueryRemember, false)
			defer viper.Set(key.QueryRemember, true)
			So(SuggestMany("sea"), ShouldBeEmpty)
			So(Suggest("seasn 2x", []string{"Season 2"}).IsAbsent(), ShouldBeTrue)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  PILOT  "), ShouldEqual, "pilot")
		})
	})
}
