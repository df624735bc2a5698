package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("When writing a file under a missing directory", func() {
			err := WriteAtomic("/out/nested/state.json", []byte(`{"a":1}`), 0o644)

			Convey("Then the file holds the data and no temp file remains", func() {
				So(err, ShouldBeNil)
				data, err := API().ReadFile("/out/nested/state.json")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, `{"a":1}`)

				exists, _ := API().Exists("/out/nested/state.json.tmp")
				So(exists, ShouldBeFalse)
			})
		})

		Convey("When overwriting an existing file", func() {
			So(WriteAtomic("/out/state.json", []byte("old"), 0o644), ShouldBeNil)
			So(WriteAtomic("/out/state.json", []byte("new"), 0o644), ShouldBeNil)

			data, _ := API().ReadFile("/out/state.json")
			So(string(data), ShouldEqual, "new")
		})
	})
}

func TestSetReadOnlyFs(t *testing.T) {
	Convey("Given a read-only view", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/kept.txt", []byte("x"), 0o644), ShouldBeNil)
		SetReadOnlyFs()
		defer SetMemMapFs()

		Convey("Existing files stay readable", func() {
			data, err := API().ReadFile("/kept.txt")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "x")
		})

		Convey("Writes fail", func() {
			So(WriteAtomic("/new.txt", []byte("y"), 0o644), ShouldNotBeNil)
		})
	})
}
