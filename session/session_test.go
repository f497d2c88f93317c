package session

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/playback"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given a session snapshot", t, func() {
		snapshot := playback.Snapshot{
			Entries: []playback.Entry{
				{Path: "/m/a.mkv", Title: "a"},
				{Path: "/m/b.mp4", Title: "b"},
			},
			Current:    1,
			PositionMs: 42_000,
			Volume:     70,
		}

		Convey("When saving it", func() {
			err := Save(snapshot)
			So(err, ShouldBeNil)

			Convey("Then it loads back intact", func() {
				loaded, ok, err := Load()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(loaded.Current, ShouldEqual, 1)
				So(loaded.PositionMs, ShouldEqual, 42_000)
				So(len(loaded.Entries), ShouldEqual, 2)
			})

			Convey("And clearing removes it", func() {
				So(Clear(), ShouldBeNil)
				_, ok, err := Load()
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})
}
