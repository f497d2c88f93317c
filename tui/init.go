// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the terminal user interface and populates the playlist
// from the launch options.
func (b *statefulBubble) Init() tea.Cmd {
	return b.syncPlaylist()
}
