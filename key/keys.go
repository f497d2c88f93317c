// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys maintain the state and configuration for the external playback engine.
const (
	PlayerDefault    = "player.default"
	PlayerVolume     = "player.volume"
	PlayerVolumeStep = "player.volume_step"
	PlayerSeekStep   = "player.seek_step"
)

// Session Persistence - these keys configure the saving and restoring of the playlist between runs.
const (
	SessionRestoreOnStart = "session.restore_on_start"
	SessionSaveOnExit     = "session.save_on_exit"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing       = "tui.item_spacing"
	TUIShowPaths         = "tui.show_paths"
	TUIFilterSuggestions = "tui.filter_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
