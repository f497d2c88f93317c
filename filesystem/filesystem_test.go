package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSwitch(t *testing.T) {
	Convey("Filesystem backend", t, func() {
		Convey("Defaults to the OS filesystem", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Switches to an in-memory filesystem", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("In-memory writes round-trip", func() {
			SetMemMapFs()
			So(API().WriteFile("/probe", []byte("ok"), 0644), ShouldBeNil)
			data, err := API().ReadFile("/probe")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "ok")
		})
	})
}
