package config

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.seek.step")
			So(result, ShouldEqual, "player_seek_step")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env should carry the application prefix", func() {
			f := Default["player.volume"]
			So(f.Env(), ShouldEqual, "CINE_PLAYER_VOLUME")
		})

		Convey("Every registered field has a description", func() {
			for _, f := range Default {
				So(f.Description, ShouldNotBeEmpty)
			}
		})
	})
}
