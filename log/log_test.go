package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and nothing is enabled", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates the daily file and entries land in it", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Episode("Season 1", "Pilot").Warn("content not found")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "content not found")
			So(string(data), ShouldContainSubstring, "Pilot")
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given an old and a fresh log file", t, func() {
		fs := filesystem.API()
		dir := where.Logs()
		old := filepath.Join(dir, "2001-01-01.log")
		fresh := filepath.Join(dir, "fresh.log")
		other := filepath.Join(dir, "notes.txt")

		for _, p := range []string{old, fresh, other} {
			So(fs.WriteFile(p, []byte("x"), 0644), ShouldBeNil)
		}
		stale := time.Now().Add(-48 * time.Hour)
		So(fs.Chtimes(old, stale, stale), ShouldBeNil)
		So(fs.Chtimes(other, stale, stale), ShouldBeNil)

		Convey("Prune removes only the stale log", func() {
			So(Prune(24*time.Hour), ShouldBeNil)

			exists, _ := fs.Exists(old)
			So(exists, ShouldBeFalse)
			exists, _ = fs.Exists(fresh)
			So(exists, ShouldBeTrue)
			exists, _ = fs.Exists(other)
			So(exists, ShouldBeTrue)
		})
	})
}
