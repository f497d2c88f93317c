package query

import (
	"testing"

	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.TUIFilterSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered filter queries", t, func() {
		So(Remember("night of the hunter", 1), ShouldBeNil)
		So(Remember("night train", 5), ShouldBeNil)

		Convey("Suggest returns the highest ranked match", func() {
			suggestion := Suggest("night")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet(), ShouldEqual, "night train")
		})

		Convey("SuggestMany returns all matches by rank", func() {
			suggestions := SuggestMany("night")
			So(len(suggestions), ShouldEqual, 2)
			So(suggestions[0], ShouldEqual, "night train")
		})

		Convey("No match yields no suggestion", func() {
			So(Suggest("zzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Input is normalized before matching", func() {
			So(Remember("  MIXED Case  ", 1), ShouldBeNil)
			suggestions := SuggestMany("mixed case")
			So(suggestions, ShouldContain, "mixed case")
		})
	})
}
