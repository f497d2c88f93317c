package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Rejects empty input", func() {
			_, err := sanitizeMediaTarget("   ")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects control characters", func() {
			_, err := sanitizeMediaTarget("/tmp/mov\nie.mp4")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects flag-like paths", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Cleans valid paths", func() {
			path, err := sanitizeMediaTarget("/media//movies/./film.mkv")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/media/movies/film.mkv")
		})
	})
}

func TestState(t *testing.T) {
	Convey("State", t, func() {
		Convey("Fresh engine is NotLoaded", func() {
			mpv := NewMPV()
			So(mpv.State(), ShouldEqual, NotLoaded)
			So(mpv.IsRunning(), ShouldBeFalse)
		})

		Convey("String names every state", func() {
			states := []State{NotLoaded, Loading, Playing, Paused, Stopped, Ended}
			for _, s := range states {
				So(s.String(), ShouldNotEqual, "unknown")
			}
		})
	})
}

func TestSocket(t *testing.T) {
	Convey("Socket", t, func() {
		Convey("Empty before the process is spawned", func() {
			mpv := NewMPV()
			So(mpv.Socket(), ShouldBeEmpty)
		})
	})
}
