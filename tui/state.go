// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	playlistState state = iota
	filterState
	addState
	scrubState
	errorState
)
