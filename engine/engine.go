// Package engine defines a unified abstraction layer for media playback backends.
// The primary implementation targets 'mpv' via its JSON-IPC interface.
package engine

// State describes the playback engine's current condition as observed over IPC.
type State int

const (
	// NotLoaded means no engine process is running or no media was ever loaded.
	NotLoaded State = iota

	// Loading means a load command was issued but the media is not yet playing.
	Loading

	// Playing means media is loaded and advancing.
	Playing

	// Paused means media is loaded but suspended.
	Paused

	// Stopped means the engine is alive but idle, with no media loaded.
	Stopped

	// Ended means the current media reached its end and the engine is parked there.
	Ended
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotLoaded:
		return "not loaded"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// Engine encapsulates the required capabilities of a media playback backend.
type Engine interface {
	// Load starts playback of the given file path.
	// If an engine instance is already running, it loads the new file into it.
	Load(path string) error

	// TogglePause inverts the current playback suspension state.
	TogglePause() error

	// Stop unloads the current media, leaving the engine idle.
	Stop() error

	// Seek transitions playback to an absolute position in milliseconds.
	Seek(ms int) error

	// SetVolume sets the engine volume on the 0-100 scale.
	SetVolume(volume int) error

	// SetMute forces the engine mute flag to the given value.
	SetMute(muted bool) error

	// State derives the engine's current playback condition.
	State() State

	// PositionMs retrieves the current playback position in milliseconds.
	PositionMs() (int, error)

	// DurationMs retrieves the total length of the active media in milliseconds.
	DurationMs() (int, error)

	// IsRunning validates the liveness of the underlying playback process.
	IsRunning() bool

	// Wait returns a channel that is closed when the engine process exits.
	Wait() <-chan struct{}

	// Close terminates the engine and releases all associated system resources.
	Close() error

	// Socket retrieves the identifier for the IPC channel.
	Socket() string
}
