package tui

import (
	"errors"
	"testing"

	"github.com/cine-cli/cine/engine"
	"github.com/cine-cli/cine/playback"
	. "github.com/smartystreets/goconvey/convey"
)

// stubEngine is a minimal Engine whose Load can be scripted to fail.
type stubEngine struct {
	loadErr error
	state   engine.State
}

func (e *stubEngine) Load(string) error {
	if e.loadErr != nil {
		return e.loadErr
	}
	e.state = engine.Playing
	return nil
}

func (e *stubEngine) TogglePause() error       { return nil }
func (e *stubEngine) Stop() error              { e.state = engine.Stopped; return nil }
func (e *stubEngine) Seek(int) error           { return nil }
func (e *stubEngine) SetVolume(int) error      { return nil }
func (e *stubEngine) SetMute(bool) error       { return nil }
func (e *stubEngine) State() engine.State      { return e.state }
func (e *stubEngine) PositionMs() (int, error) { return 0, nil }
func (e *stubEngine) DurationMs() (int, error) { return 0, nil }
func (e *stubEngine) IsRunning() bool          { return e.state != engine.NotLoaded }
func (e *stubEngine) Wait() <-chan struct{}    { return nil }
func (e *stubEngine) Close() error             { return nil }
func (e *stubEngine) Socket() string           { return "" }

func newTestBubble(eng *stubEngine) *statefulBubble {
	controller := playback.NewController(eng)
	controller.Add("/m/missing.mkv")

	b := newBubble(controller, &Options{})
	b.resize(80, 24)
	b.setState(playlistState)
	return b
}

func TestLoadFailure(t *testing.T) {
	Convey("Given an entry the engine refuses to load", t, func() {
		eng := &stubEngine{loadErr: errors.New("no such file")}
		b := newTestBubble(eng)

		Convey("Starting it switches to the error view", func() {
			b.playEntry(0)

			So(b.state, ShouldEqual, errorState)
			So(b.lastError, ShouldNotBeNil)
			So(b.View(), ShouldContainSubstring, "no such file")
		})

		Convey("The entry stays selected for a retry", func() {
			b.playEntry(0)
			So(b.controller.Playlist().Current(), ShouldEqual, 0)
		})

		Convey("Backing out returns to the playlist", func() {
			b.playEntry(0)
			b.previousState()
			So(b.state, ShouldEqual, playlistState)
		})
	})
}

func TestLoadSuccess(t *testing.T) {
	Convey("Given an entry that loads fine", t, func() {
		eng := &stubEngine{}
		b := newTestBubble(eng)

		Convey("Starting it stays on the playlist view", func() {
			b.playEntry(0)

			So(b.state, ShouldEqual, playlistState)
			So(b.lastError, ShouldBeNil)
			So(b.controller.PollArmed(), ShouldBeTrue)
		})
	})
}
