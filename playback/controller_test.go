package playback

import (
	"errors"
	"testing"

	"github.com/cine-cli/cine/engine"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeEngine is a scriptable Engine for controller tests.
type fakeEngine struct {
	state      engine.State
	positionMs int
	durationMs int
	volume     int
	muted      bool
	loaded     []string
	seeks      []int
	loadErr    error
	exited     chan struct{}
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		state:  engine.NotLoaded,
		exited: make(chan struct{}),
	}
}

func (f *fakeEngine) Load(path string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = append(f.loaded, path)
	f.state = engine.Playing
	f.positionMs = 0
	return nil
}

func (f *fakeEngine) TogglePause() error {
	switch f.state {
	case engine.Playing:
		f.state = engine.Paused
	case engine.Paused:
		f.state = engine.Playing
	}
	return nil
}

func (f *fakeEngine) Stop() error {
	f.state = engine.Stopped
	return nil
}

func (f *fakeEngine) Seek(ms int) error {
	f.seeks = append(f.seeks, ms)
	f.positionMs = ms
	return nil
}

func (f *fakeEngine) SetVolume(v int) error  { f.volume = v; return nil }
func (f *fakeEngine) SetMute(m bool) error   { f.muted = m; return nil }
func (f *fakeEngine) State() engine.State    { return f.state }
func (f *fakeEngine) PositionMs() (int, error) { return f.positionMs, nil }
func (f *fakeEngine) DurationMs() (int, error) { return f.durationMs, nil }
func (f *fakeEngine) IsRunning() bool        { return f.state != engine.NotLoaded }
func (f *fakeEngine) Wait() <-chan struct{}  { return f.exited }
func (f *fakeEngine) Close() error           { return nil }
func (f *fakeEngine) Socket() string         { return "" }

func newTestController() (*Controller, *fakeEngine) {
	eng := newFakeEngine()
	return NewController(eng), eng
}

func TestSelectAndPlay(t *testing.T) {
	Convey("SelectAndPlay", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4", "/m/b.mp4")

		Convey("Loads the entry and arms the poll", func() {
			So(c.SelectAndPlay(1), ShouldBeNil)
			So(eng.loaded, ShouldResemble, []string{"/m/b.mp4"})
			So(c.Transport().IsPlaying, ShouldBeTrue)
			So(c.PollArmed(), ShouldBeTrue)
		})

		Convey("Resets the known media length", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			eng.durationMs = 90_000
			c.PollTick()
			So(c.Transport().LengthMs, ShouldEqual, 90_000)

			So(c.SelectAndPlay(1), ShouldBeNil)
			So(c.Transport().LengthMs, ShouldEqual, 0)
		})

		Convey("Rejects out-of-range indices", func() {
			So(c.SelectAndPlay(5), ShouldEqual, ErrOutOfRange)
			So(c.SelectAndPlay(-1), ShouldEqual, ErrOutOfRange)
		})

		Convey("Keeps the selection on a load failure", func() {
			eng.loadErr = errors.New("boom")
			err := c.SelectAndPlay(1)

			var loadErr *LoadError
			So(errors.As(err, &loadErr), ShouldBeTrue)
			So(c.Playlist().Current(), ShouldEqual, 1)
			So(c.Transport().IsPlaying, ShouldBeFalse)
			So(c.PollArmed(), ShouldBeFalse)
		})

		Convey("Pushes the held volume to a fresh engine", func() {
			c.SetVolume(37)
			So(c.SelectAndPlay(0), ShouldBeNil)
			So(eng.volume, ShouldEqual, 37)
		})
	})
}

func TestPlayPause(t *testing.T) {
	Convey("PlayPause", t, func() {
		c, eng := newTestController()

		Convey("Does nothing on an empty playlist", func() {
			So(c.PlayPause(), ShouldBeNil)
			So(eng.loaded, ShouldBeEmpty)
		})

		Convey("Starts the selected entry when nothing is loaded", func() {
			c.Add("/m/a.mp4", "/m/b.mp4")
			So(c.Playlist().Select(1), ShouldBeNil)
			So(c.PlayPause(), ShouldBeNil)
			So(eng.loaded, ShouldResemble, []string{"/m/b.mp4"})
		})

		Convey("Toggles an active engine", func() {
			c.Add("/m/a.mp4")
			So(c.SelectAndPlay(0), ShouldBeNil)

			So(c.PlayPause(), ShouldBeNil)
			So(eng.state, ShouldEqual, engine.Paused)
			So(c.Transport().IsPlaying, ShouldBeFalse)

			So(c.PlayPause(), ShouldBeNil)
			So(eng.state, ShouldEqual, engine.Playing)
			So(c.Transport().IsPlaying, ShouldBeTrue)
		})

		Convey("Restarts after a stop", func() {
			c.Add("/m/a.mp4")
			So(c.SelectAndPlay(0), ShouldBeNil)
			c.Stop()
			So(c.PlayPause(), ShouldBeNil)
			So(len(eng.loaded), ShouldEqual, 2)
		})
	})
}

func TestStopAndRemove(t *testing.T) {
	Convey("Stop and Remove", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4", "/m/b.mp4", "/m/c.mp4")

		Convey("Stop disarms the poll and resets the transport", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			c.Stop()

			So(c.PollArmed(), ShouldBeFalse)
			tr := c.Transport()
			So(tr.IsPlaying, ShouldBeFalse)
			So(tr.PositionMs, ShouldEqual, 0)
			So(tr.LengthMs, ShouldEqual, 0)
		})

		Convey("Removing the playing entry stops playback", func() {
			So(c.SelectAndPlay(1), ShouldBeNil)
			c.Remove([]int{1})

			So(eng.state, ShouldEqual, engine.Stopped)
			So(c.Transport().IsPlaying, ShouldBeFalse)
			So(c.Playlist().Len(), ShouldEqual, 2)
		})

		Convey("Removing the playing entry resets the transport first", func() {
			eng.durationMs = 60000
			So(c.SelectAndPlay(1), ShouldBeNil)
			c.PollTick()
			So(c.Transport().LengthMs, ShouldEqual, 60000)

			c.Remove([]int{0, 1})

			So(eng.state, ShouldEqual, engine.Stopped)
			So(c.PollArmed(), ShouldBeFalse)
			So(c.Transport().LengthMs, ShouldEqual, 0)
			So(c.Transport().PositionMs, ShouldEqual, 0)
			So(c.Playlist().Len(), ShouldEqual, 1)
		})

		Convey("Removing other entries leaves playback alone", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			c.Remove([]int{2})

			So(eng.state, ShouldEqual, engine.Playing)
			So(c.Transport().IsPlaying, ShouldBeTrue)
		})

		Convey("Clear stops and empties everything", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			c.Clear()

			So(c.Playlist().Len(), ShouldEqual, 0)
			So(c.Playlist().Current(), ShouldEqual, -1)
			So(c.Transport().IsPlaying, ShouldBeFalse)
		})
	})
}

func TestNextPrev(t *testing.T) {
	Convey("Next and Prev", t, func() {
		c, eng := newTestController()

		Convey("No-op on an empty playlist", func() {
			So(c.Next(), ShouldBeNil)
			So(c.Prev(), ShouldBeNil)
			So(eng.loaded, ShouldBeEmpty)
		})

		Convey("Wraps around in both directions", func() {
			c.Add("/m/a.mp4", "/m/b.mp4")

			So(c.Next(), ShouldBeNil)
			So(c.Playlist().Current(), ShouldEqual, 1)
			So(c.Next(), ShouldBeNil)
			So(c.Playlist().Current(), ShouldEqual, 0)
			So(c.Prev(), ShouldBeNil)
			So(c.Playlist().Current(), ShouldEqual, 1)
		})
	})
}

func TestSeek(t *testing.T) {
	Convey("SeekRelative", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4")
		So(c.SelectAndPlay(0), ShouldBeNil)

		Convey("No-op until the length is known", func() {
			c.SeekRelative(10)
			So(eng.seeks, ShouldBeEmpty)
		})

		Convey("Moves by whole seconds", func() {
			eng.durationMs = 60_000
			eng.positionMs = 20_000
			c.PollTick()

			c.SeekRelative(5)
			So(c.Transport().PositionMs, ShouldEqual, 25_000)
			c.SeekRelative(-10)
			So(c.Transport().PositionMs, ShouldEqual, 15_000)
		})

		Convey("Clamps at zero", func() {
			eng.durationMs = 60_000
			c.PollTick()

			c.SeekRelative(-999)
			So(c.Transport().PositionMs, ShouldEqual, 0)
		})

		Convey("Stops short of the end", func() {
			eng.durationMs = 60_000
			eng.positionMs = 59_000
			c.PollTick()

			c.SeekRelative(30)
			So(c.Transport().PositionMs, ShouldEqual, 59_500)
		})
	})
}

func TestDrag(t *testing.T) {
	Convey("Scrub dragging", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4")
		So(c.SelectAndPlay(0), ShouldBeNil)
		eng.durationMs = 120_000
		c.PollTick()

		Convey("Poll leaves the position alone while dragging", func() {
			c.BeginDrag()
			eng.positionMs = 45_000
			c.PollTick()
			So(c.Transport().PositionMs, ShouldEqual, 0)
		})

		Convey("EndDrag commits a single clamped seek", func() {
			c.BeginDrag()
			c.EndDrag(500_000)

			So(c.Transport().Dragging, ShouldBeFalse)
			So(eng.seeks, ShouldResemble, []int{119_500})
			So(c.Transport().PositionMs, ShouldEqual, 119_500)
		})

		Convey("EndDrag without a known length commits nothing", func() {
			c2, eng2 := newTestController()
			c2.Add("/m/a.mp4")
			So(c2.SelectAndPlay(0), ShouldBeNil)

			c2.BeginDrag()
			c2.EndDrag(10_000)
			So(eng2.seeks, ShouldBeEmpty)
		})
	})
}

func TestVolumeAndMute(t *testing.T) {
	Convey("Volume and mute", t, func() {
		c, eng := newTestController()

		Convey("SetVolume clamps to 0-100", func() {
			c.SetVolume(150)
			So(c.Transport().Volume, ShouldEqual, 100)
			c.SetVolume(-10)
			So(c.Transport().Volume, ShouldEqual, 0)
		})

		Convey("NudgeVolume steps from the current level", func() {
			c.SetVolume(50)
			c.NudgeVolume(5)
			So(c.Transport().Volume, ShouldEqual, 55)
			c.NudgeVolume(-60)
			So(c.Transport().Volume, ShouldEqual, 0)
		})

		Convey("Mute shadows the volume and unmute restores it", func() {
			c.SetVolume(64)

			c.ToggleMute()
			So(c.Transport().Muted, ShouldBeTrue)
			So(eng.muted, ShouldBeTrue)
			So(c.Transport().SavedVolume, ShouldEqual, 64)

			c.ToggleMute()
			So(c.Transport().Muted, ShouldBeFalse)
			So(c.Transport().Volume, ShouldEqual, 64)
			So(eng.volume, ShouldEqual, 64)
		})

		Convey("SetVolume while muted does not clobber the shadow", func() {
			c.SetVolume(64)
			c.ToggleMute()
			c.SetVolume(10)

			So(c.Transport().SavedVolume, ShouldEqual, 64)
			c.ToggleMute()
			So(c.Transport().Volume, ShouldEqual, 64)
		})
	})
}

func TestPollTick(t *testing.T) {
	Convey("PollTick", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4", "/m/b.mp4")

		Convey("Does nothing while disarmed", func() {
			eng.positionMs = 5000
			c.PollTick()
			So(c.Transport().PositionMs, ShouldEqual, 0)
		})

		Convey("Tracks position and length", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			eng.positionMs = 12_000
			eng.durationMs = 300_000
			c.PollTick()

			tr := c.Transport()
			So(tr.PositionMs, ShouldEqual, 12_000)
			So(tr.LengthMs, ShouldEqual, 300_000)
		})

		Convey("Retries the length until the engine reports one", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			c.PollTick()
			So(c.Transport().LengthMs, ShouldEqual, 0)

			eng.durationMs = 45_000
			c.PollTick()
			So(c.Transport().LengthMs, ShouldEqual, 45_000)
		})

		Convey("Advances exactly once when the media ends", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			eng.state = engine.Ended
			c.PollTick()

			So(c.Playlist().Current(), ShouldEqual, 1)
			So(eng.loaded, ShouldResemble, []string{"/m/a.mp4", "/m/b.mp4"})
			So(c.Transport().IsPlaying, ShouldBeTrue)
		})

		Convey("Stops when the engine process disappears", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			eng.state = engine.NotLoaded
			c.PollTick()

			So(c.PollArmed(), ShouldBeFalse)
			So(c.Transport().IsPlaying, ShouldBeFalse)
		})

		Convey("Mirrors a pause made in the player window", func() {
			So(c.SelectAndPlay(0), ShouldBeNil)
			eng.state = engine.Paused
			c.PollTick()
			So(c.Transport().IsPlaying, ShouldBeFalse)
		})
	})
}

func TestSnapshotRestore(t *testing.T) {
	Convey("Snapshot and Restore", t, func() {
		c, eng := newTestController()
		c.Add("/m/a.mp4", "/m/b.mp4")
		So(c.SelectAndPlay(1), ShouldBeNil)
		eng.positionMs = 30_000
		eng.durationMs = 100_000
		c.PollTick()
		c.SetVolume(42)

		snap := c.Snapshot()

		Convey("Snapshot captures the session", func() {
			So(snap.Current, ShouldEqual, 1)
			So(snap.PositionMs, ShouldEqual, 30_000)
			So(snap.Volume, ShouldEqual, 42)
			So(len(snap.Entries), ShouldEqual, 2)
		})

		Convey("Restore rebuilds the playlist without playing", func() {
			c2, eng2 := newTestController()
			c2.Restore(snap)

			So(c2.Playlist().Len(), ShouldEqual, 2)
			So(c2.Playlist().Current(), ShouldEqual, 1)
			So(c2.Transport().Volume, ShouldEqual, 42)
			So(c2.Transport().IsPlaying, ShouldBeFalse)
			So(eng2.loaded, ShouldBeEmpty)
		})

		Convey("Restore tolerates a stale selection index", func() {
			snap.Current = 99
			c2, _ := newTestController()
			c2.Restore(snap)
			So(c2.Playlist().Current(), ShouldEqual, 0)
		})
	})
}
