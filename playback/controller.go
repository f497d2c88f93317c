package playback

import (
	"github.com/cine-cli/cine/engine"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/log"
	"github.com/spf13/viper"
)

// seekTailMarginMs keeps seeks short of the absolute end so the engine
// does not flip into its end-of-file state from a plain seek.
const seekTailMarginMs = 500

// PollInterval is the cadence at which callers should invoke PollTick
// while PollArmed reports true.
const PollInterval = 250 // milliseconds

// Transport mirrors the engine-side playback state the UI renders from.
type Transport struct {
	IsPlaying   bool
	LengthMs    int
	PositionMs  int
	Muted       bool
	Volume      int
	SavedVolume int
	Dragging    bool
}

// Controller owns the playlist and the engine handle. All methods must be
// called from a single goroutine; the controller does no locking of its own.
type Controller struct {
	eng       engine.Engine
	playlist  *Playlist
	transport Transport
	pollArmed bool
}

// NewController builds a controller around the given engine with the
// configured startup volume.
func NewController(eng engine.Engine) *Controller {
	volume := clampVolume(viper.GetInt(key.PlayerVolume))
	return &Controller{
		eng:      eng,
		playlist: NewPlaylist(),
		transport: Transport{
			Volume:      volume,
			SavedVolume: volume,
		},
	}
}

// Playlist exposes the underlying playlist.
func (c *Controller) Playlist() *Playlist {
	return c.playlist
}

// Transport returns the current transport state.
func (c *Controller) Transport() Transport {
	return c.transport
}

// PollArmed reports whether the caller should keep the poll cadence alive.
func (c *Controller) PollArmed() bool {
	return c.pollArmed
}

// Add appends unique paths to the playlist and returns how many were added.
func (c *Controller) Add(paths ...string) int {
	return c.playlist.Add(paths...)
}

// Remove deletes the entries at the given indices. If the selected entry
// is among them playback stops before the removal takes effect.
func (c *Controller) Remove(indices []int) {
	if current := c.playlist.Current(); current >= 0 {
		for _, i := range indices {
			if i == current {
				c.Stop()
				break
			}
		}
	}
	c.playlist.Remove(indices)
}

// Clear stops playback and empties the playlist.
func (c *Controller) Clear() {
	c.Stop()
	c.playlist.Clear()
}

// SelectAndPlay moves the selection to the given index and loads that
// entry into the engine. On a load failure the entry stays selected and
// the error is returned.
func (c *Controller) SelectAndPlay(i int) error {
	if err := c.playlist.Select(i); err != nil {
		return err
	}

	entry, _ := c.playlist.At(i)

	// Media length is unknown until the engine probes the new file.
	c.transport.LengthMs = 0
	c.transport.PositionMs = 0

	if err := c.eng.Load(entry.Path); err != nil {
		c.transport.IsPlaying = false
		c.pollArmed = false
		return &LoadError{Path: entry.Path, Err: err}
	}

	c.applyAudio()

	c.transport.IsPlaying = true
	c.pollArmed = true
	return nil
}

// PlayPause toggles playback. When nothing is loaded it starts the
// selected entry, or the first one if there is no selection.
func (c *Controller) PlayPause() error {
	switch c.eng.State() {
	case engine.NotLoaded, engine.Stopped:
		if c.playlist.Len() == 0 {
			return nil
		}
		i := c.playlist.Current()
		if i < 0 {
			i = 0
		}
		return c.SelectAndPlay(i)
	}

	if err := c.eng.TogglePause(); err != nil {
		// The engine did not take the command. Keep the UI coherent by
		// flipping the local flag anyway.
		log.Warnf("toggle pause: %s", err)
		c.transport.IsPlaying = !c.transport.IsPlaying
		return nil
	}

	c.transport.IsPlaying = c.eng.State() == engine.Playing
	return nil
}

// Stop unloads the engine and resets the transport. Engine errors are
// swallowed; the local state always ends up stopped.
func (c *Controller) Stop() {
	if err := c.eng.Stop(); err != nil {
		log.Warnf("stop: %s", err)
	}

	c.pollArmed = false
	c.transport.IsPlaying = false
	c.transport.PositionMs = 0
	c.transport.LengthMs = 0
	c.transport.Dragging = false
}

// Next plays the entry after the selection, wrapping to the start.
// It is a no-op on an empty playlist.
func (c *Controller) Next() error {
	i, ok := c.playlist.NextIndex()
	if !ok {
		return nil
	}
	return c.SelectAndPlay(i)
}

// Prev plays the entry before the selection, wrapping to the end.
// It is a no-op on an empty playlist.
func (c *Controller) Prev() error {
	i, ok := c.playlist.PrevIndex()
	if !ok {
		return nil
	}
	return c.SelectAndPlay(i)
}

// SeekRelative moves playback by the given number of seconds. It is a
// no-op until the media length is known.
func (c *Controller) SeekRelative(deltaSeconds int) {
	if c.transport.LengthMs <= 0 {
		return
	}

	target := clampPosition(c.transport.PositionMs+deltaSeconds*1000, c.transport.LengthMs)

	if err := c.eng.Seek(target); err != nil {
		log.Warnf("seek: %s", err)
	}
	c.transport.PositionMs = target
}

// BeginDrag suspends position updates from the poll while the user moves
// the scrub handle.
func (c *Controller) BeginDrag() {
	c.transport.Dragging = true
}

// CancelDrag resumes poll updates without committing a new position.
func (c *Controller) CancelDrag() {
	c.transport.Dragging = false
}

// EndDrag commits the dragged position and resumes poll updates.
func (c *Controller) EndDrag(positionMs int) {
	c.transport.Dragging = false

	if c.transport.LengthMs <= 0 {
		return
	}

	target := clampPosition(positionMs, c.transport.LengthMs)

	if err := c.eng.Seek(target); err != nil {
		log.Warnf("seek: %s", err)
	}
	c.transport.PositionMs = target
}

// SetVolume sets the playback volume, clamped to 0-100. While unmuted the
// shadow volume follows so unmuting restores the latest audible level.
func (c *Controller) SetVolume(volume int) {
	volume = clampVolume(volume)

	c.transport.Volume = volume
	if !c.transport.Muted {
		c.transport.SavedVolume = volume
	}

	if err := c.eng.SetVolume(volume); err != nil {
		log.Warnf("set volume: %s", err)
	}
}

// NudgeVolume adjusts the volume by the given delta.
func (c *Controller) NudgeVolume(delta int) {
	c.SetVolume(c.transport.Volume + delta)
}

// ToggleMute flips the mute flag. Muting shadows the current volume;
// unmuting restores it.
func (c *Controller) ToggleMute() {
	if c.transport.Muted {
		c.transport.Muted = false
		c.transport.Volume = c.transport.SavedVolume
		if err := c.eng.SetMute(false); err != nil {
			log.Warnf("unmute: %s", err)
		}
		if err := c.eng.SetVolume(c.transport.Volume); err != nil {
			log.Warnf("set volume: %s", err)
		}
		return
	}

	c.transport.SavedVolume = c.transport.Volume
	c.transport.Muted = true
	if err := c.eng.SetMute(true); err != nil {
		log.Warnf("mute: %s", err)
	}
}

// PollTick synchronizes the transport with the engine. Callers invoke it
// every PollInterval milliseconds while PollArmed reports true.
func (c *Controller) PollTick() {
	if !c.pollArmed {
		return
	}

	switch c.eng.State() {
	case engine.Ended:
		// Advance exactly once per finished file. Position and length
		// refresh on the next tick against the new media.
		if err := c.Next(); err != nil {
			log.Errorf("advance after end: %s", err)
		}
		return
	case engine.NotLoaded:
		// The engine process went away, usually a closed player window.
		c.Stop()
		return
	case engine.Playing:
		c.transport.IsPlaying = true
	case engine.Paused, engine.Stopped:
		c.transport.IsPlaying = false
	}

	if !c.transport.Dragging {
		if pos, err := c.eng.PositionMs(); err == nil {
			c.transport.PositionMs = pos
		}
	}

	// The demuxer reports the length some ticks after a load. Keep asking
	// until a real value shows up.
	if c.transport.LengthMs <= 0 {
		if dur, err := c.eng.DurationMs(); err == nil && dur > 0 {
			c.transport.LengthMs = dur
		}
	}
}

// Close releases the engine.
func (c *Controller) Close() error {
	c.pollArmed = false
	return c.eng.Close()
}

// applyAudio pushes the locally held volume and mute flag to the engine.
// A freshly spawned process starts with its own defaults otherwise.
func (c *Controller) applyAudio() {
	if err := c.eng.SetVolume(c.transport.Volume); err != nil {
		log.Warnf("set volume: %s", err)
	}
	if err := c.eng.SetMute(c.transport.Muted); err != nil {
		log.Warnf("set mute: %s", err)
	}
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampPosition(ms, lengthMs int) int {
	max := lengthMs - seekTailMarginMs
	if max < 0 {
		max = 0
	}
	if ms < 0 {
		return 0
	}
	if ms > max {
		return max
	}
	return ms
}
