package playback

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaylistAdd(t *testing.T) {
	Convey("Playlist Add", t, func() {
		p := NewPlaylist()

		Convey("Starts empty with no selection", func() {
			So(p.Len(), ShouldEqual, 0)
			So(p.Current(), ShouldEqual, -1)
		})

		Convey("Selects the first entry on first add", func() {
			added := p.Add("/media/a.mp4", "/media/b.mkv")
			So(added, ShouldEqual, 2)
			So(p.Current(), ShouldEqual, 0)
		})

		Convey("Skips duplicate paths", func() {
			p.Add("/media/a.mp4")
			added := p.Add("/media/a.mp4", "/media/b.mkv")
			So(added, ShouldEqual, 1)
			So(p.Len(), ShouldEqual, 2)
		})

		Convey("Skips duplicates within a single batch", func() {
			added := p.Add("/media/a.mp4", "/media/a.mp4")
			So(added, ShouldEqual, 1)
		})

		Convey("Derives titles from the file stem", func() {
			p.Add("/media/some.film.mkv")
			entry, ok := p.At(0)
			So(ok, ShouldBeTrue)
			So(entry.Title, ShouldEqual, "some.film")
		})

		Convey("Keeps an existing selection", func() {
			p.Add("/media/a.mp4", "/media/b.mkv")
			So(p.Select(1), ShouldBeNil)
			p.Add("/media/c.avi")
			So(p.Current(), ShouldEqual, 1)
		})
	})
}

func TestPlaylistRemove(t *testing.T) {
	Convey("Playlist Remove", t, func() {
		p := NewPlaylist()
		p.Add("/m/a.mp4", "/m/b.mp4", "/m/c.mp4", "/m/d.mp4")

		Convey("Removes multiple indices correctly regardless of order", func() {
			p.Remove([]int{0, 2})
			So(p.Len(), ShouldEqual, 2)
			a, _ := p.At(0)
			b, _ := p.At(1)
			So(a.Path, ShouldEqual, "/m/b.mp4")
			So(b.Path, ShouldEqual, "/m/d.mp4")
		})

		Convey("Reports when the selection is removed", func() {
			So(p.Select(2), ShouldBeNil)
			So(p.Remove([]int{2}), ShouldBeTrue)
			So(p.Remove([]int{0}), ShouldBeFalse)
		})

		Convey("Clamps the selection to the new tail", func() {
			So(p.Select(3), ShouldBeNil)
			p.Remove([]int{2, 3})
			So(p.Current(), ShouldEqual, 1)
		})

		Convey("Drops the selection when everything is removed", func() {
			p.Remove([]int{0, 1, 2, 3})
			So(p.Len(), ShouldEqual, 0)
			So(p.Current(), ShouldEqual, -1)
		})

		Convey("Ignores out-of-range and duplicate indices", func() {
			So(p.Remove([]int{-1, 99}), ShouldBeFalse)
			So(p.Len(), ShouldEqual, 4)
			p.Remove([]int{1, 1})
			So(p.Len(), ShouldEqual, 3)
		})
	})
}

func TestPlaylistNavigation(t *testing.T) {
	Convey("Playlist navigation", t, func() {
		p := NewPlaylist()

		Convey("Empty playlist has no neighbors", func() {
			_, ok := p.NextIndex()
			So(ok, ShouldBeFalse)
			_, ok = p.PrevIndex()
			So(ok, ShouldBeFalse)
		})

		Convey("Select rejects out-of-range indices", func() {
			p.Add("/m/a.mp4")
			So(p.Select(1), ShouldEqual, ErrOutOfRange)
			So(p.Select(-1), ShouldEqual, ErrOutOfRange)
		})

		Convey("Next wraps to the start", func() {
			p.Add("/m/a.mp4", "/m/b.mp4")
			So(p.Select(1), ShouldBeNil)
			i, ok := p.NextIndex()
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 0)
		})

		Convey("Prev wraps to the end", func() {
			p.Add("/m/a.mp4", "/m/b.mp4", "/m/c.mp4")
			So(p.Select(0), ShouldBeNil)
			i, ok := p.PrevIndex()
			So(ok, ShouldBeTrue)
			So(i, ShouldEqual, 2)
		})
	})
}
