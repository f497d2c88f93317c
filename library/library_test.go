package library

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func touch(path string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte{}, 0644))
}

func TestIsMedia(t *testing.T) {
	Convey("IsMedia", t, func() {
		Convey("Accepts playable extensions regardless of case", func() {
			So(IsMedia("/m/film.mkv"), ShouldBeTrue)
			So(IsMedia("/m/FILM.MP4"), ShouldBeTrue)
			So(IsMedia("/m/song.flac"), ShouldBeTrue)
		})

		Convey("Rejects everything else", func() {
			So(IsMedia("/m/notes.txt"), ShouldBeFalse)
			So(IsMedia("/m/cover.jpg"), ShouldBeFalse)
			So(IsMedia("/m/noext"), ShouldBeFalse)
		})
	})
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/media/movies/.cache", 0755))
		touch("/media/movies/a.mkv")
		touch("/media/movies/b.txt")
		touch("/media/movies/.cache/c.mp4")
		touch("/media/song.mp3")

		Convey("Finds playable files recursively", func() {
			files, err := Scan("/media")
			So(err, ShouldBeNil)
			So(files, ShouldContain, "/media/movies/a.mkv")
			So(files, ShouldContain, "/media/song.mp3")
		})

		Convey("Skips non-media and hidden directories", func() {
			files, err := Scan("/media")
			So(err, ShouldBeNil)
			So(files, ShouldNotContain, "/media/movies/b.txt")
			So(files, ShouldNotContain, "/media/movies/.cache/c.mp4")
		})
	})
}

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/media/shows", 0755))
		touch("/media/shows/e1.mp4")
		touch("/media/shows/e2.mp4")
		touch("/media/film.avi")
		touch("/media/readme.md")

		Convey("Mixes files and directories in argument order", func() {
			files, err := Expand([]string{"/media/film.avi", "/media/shows"})
			So(err, ShouldBeNil)
			So(files, ShouldResemble, []string{
				"/media/film.avi",
				"/media/shows/e1.mp4",
				"/media/shows/e2.mp4",
			})
		})

		Convey("Drops plain files that are not playable", func() {
			files, err := Expand([]string{"/media/readme.md"})
			So(err, ShouldBeNil)
			So(files, ShouldBeEmpty)
		})

		Convey("Errors on missing paths", func() {
			_, err := Expand([]string{"/nope"})
			So(err, ShouldNotBeNil)
		})
	})
}
