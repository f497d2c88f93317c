// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/cine-cli/cine/engine"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/library"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/session"
	"github.com/cine-cli/cine/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Paths are the files and directories given on the command line.
	Paths []string

	// Continue restores the playlist saved by the previous run.
	Continue bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	controller := playback.NewController(engine.NewMPV())
	defer util.Ignore(controller.Close)

	if options.Continue || viper.GetBool(key.SessionRestoreOnStart) {
		if snapshot, ok, err := session.Load(); err != nil {
			return err
		} else if ok {
			controller.Restore(*snapshot)
		}
	}

	if len(options.Paths) > 0 {
		files, err := library.Expand(options.Paths)
		if err != nil {
			return err
		}
		controller.Add(files...)
	}

	bubble := newBubble(controller, options)
	bubble.setState(playlistState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if viper.GetBool(key.SessionSaveOnExit) {
		if err := session.Save(controller.Snapshot()); err != nil {
			log.Errorf("save session: %s", err)
		}
	}

	return nil
}
