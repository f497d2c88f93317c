package playback

// Snapshot captures the restorable part of a playback session.
type Snapshot struct {
	Entries    []Entry `json:"entries"`
	Current    int     `json:"current"`
	PositionMs int     `json:"position_ms"`
	Volume     int     `json:"volume"`
	Muted      bool    `json:"muted"`
}

// Snapshot captures the controller's playlist and audio state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Entries:    c.playlist.Entries(),
		Current:    c.playlist.Current(),
		PositionMs: c.transport.PositionMs,
		Volume:     c.transport.Volume,
		Muted:      c.transport.Muted,
	}
}

// Restore replaces the playlist and audio state from a snapshot without
// starting playback.
func (c *Controller) Restore(s Snapshot) {
	c.playlist.Clear()
	for _, e := range s.Entries {
		c.playlist.Add(e.Path)
	}

	if s.Current >= 0 && s.Current < c.playlist.Len() {
		c.playlist.current = s.Current
	}

	c.transport.Volume = clampVolume(s.Volume)
	c.transport.SavedVolume = c.transport.Volume
	c.transport.Muted = s.Muted
	c.transport.PositionMs = s.PositionMs
}
