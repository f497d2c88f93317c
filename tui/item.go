// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// listItem implements the list.Item interface, wrapping a playlist entry for terminal display.
type listItem struct {
	entry playback.Entry

	// index is the entry's position in the playlist, which can differ
	// from its position in the list while a filter is applied.
	index int

	selected bool
	playing  bool
}

func (t *listItem) getMark() string {
	if !t.selected {
		return ""
	}

	i := icon.Pause
	if t.playing {
		i = icon.Play
	}
	return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(i))
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	title := t.entry.Title

	if mark := t.getMark(); mark != "" {
		title = fmt.Sprintf("%s %s", title, mark)
	}

	return title
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() string {
	if !viper.GetBool(key.TUIShowPaths) {
		return ""
	}
	return style.Faint(t.entry.Path)
}

// FilterValue returns the string used for list filtering.
func (t *listItem) FilterValue() string {
	return t.entry.Title
}
