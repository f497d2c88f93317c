// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	"github.com/cine-cli/cine/internal/ui"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/playback"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// pollMsg drives the transport synchronization cadence.
type pollMsg time.Time

func pollCmd() tea.Cmd {
	return tea.Tick(playback.PollInterval*time.Millisecond, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// startPolling begins the poll chain unless one is already running.
func (b *statefulBubble) startPolling() tea.Cmd {
	if b.ticking || !b.controller.PollArmed() {
		return nil
	}

	b.ticking = true
	return pollCmd()
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil

	case pollMsg:
		b.controller.PollTick()
		b.checkpointSession()

		if !b.controller.PollArmed() {
			b.ticking = false
			return b, b.syncPlaylist()
		}
		return b, tea.Batch(b.syncPlaylist(), pollCmd())

	case string:
		return b, b.notifier.Update(msg)

	case ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)

	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case playlistState:
			return b.updatePlaylistState(msg)
		case filterState:
			return b.updateFilterState(msg)
		case addState:
			return b.updateAddState(msg)
		case scrubState:
			return b.updateScrubState(msg)
		case errorState:
			return b.updateErrorState(msg)
		}
	}

	return b, b.updateComponents(msg)
}

func (b *statefulBubble) updatePlaylistState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keymap := b.keymap

	switch {
	case bubblesKey.Matches(msg, keymap.quit):
		return b, tea.Quit

	case bubblesKey.Matches(msg, keymap.confirm):
		item, ok := b.selectedItem()
		if !ok {
			return b, nil
		}
		return b, b.playEntry(item.index)

	case bubblesKey.Matches(msg, keymap.playPause):
		if err := b.controller.PlayPause(); err != nil {
			return b, b.reportPlaybackError(err)
		}
		return b, tea.Batch(b.syncPlaylist(), b.startPolling())

	case bubblesKey.Matches(msg, keymap.stop):
		b.controller.Stop()
		return b, b.syncPlaylist()

	case bubblesKey.Matches(msg, keymap.next):
		if err := b.controller.Next(); err != nil {
			return b, b.reportPlaybackError(err)
		}
		return b, tea.Batch(b.syncPlaylist(), b.startPolling())

	case bubblesKey.Matches(msg, keymap.prev):
		if err := b.controller.Prev(); err != nil {
			return b, b.reportPlaybackError(err)
		}
		return b, tea.Batch(b.syncPlaylist(), b.startPolling())

	case bubblesKey.Matches(msg, keymap.seekForward):
		b.controller.SeekRelative(viper.GetInt(key.PlayerSeekStep))
		return b, nil

	case bubblesKey.Matches(msg, keymap.seekBack):
		b.controller.SeekRelative(-viper.GetInt(key.PlayerSeekStep))
		return b, nil

	case bubblesKey.Matches(msg, keymap.volumeUp):
		b.controller.NudgeVolume(viper.GetInt(key.PlayerVolumeStep))
		return b, nil

	case bubblesKey.Matches(msg, keymap.volumeDown):
		b.controller.NudgeVolume(-viper.GetInt(key.PlayerVolumeStep))
		return b, nil

	case bubblesKey.Matches(msg, keymap.mute):
		b.controller.ToggleMute()
		return b, nil

	case bubblesKey.Matches(msg, keymap.add):
		b.addC.SetValue("")
		b.addC.Focus()
		b.newState(addState)
		return b, nil

	case bubblesKey.Matches(msg, keymap.remove):
		item, ok := b.selectedItem()
		if !ok {
			return b, nil
		}
		b.controller.Remove([]int{item.index})
		return b, b.syncPlaylist()

	case bubblesKey.Matches(msg, keymap.clear):
		b.controller.Clear()
		return b, tea.Batch(b.syncPlaylist(), b.notify("playlist cleared"))

	case bubblesKey.Matches(msg, keymap.filter):
		b.filterC.SetValue(b.filterQuery)
		b.filterC.Focus()
		b.suggestFilter()
		b.newState(filterState)
		return b, nil

	case bubblesKey.Matches(msg, keymap.scrub):
		if b.controller.Transport().LengthMs <= 0 {
			return b, nil
		}
		b.controller.BeginDrag()
		b.scrubPositionMs = b.controller.Transport().PositionMs
		b.newState(scrubState)
		return b, nil

	case bubblesKey.Matches(msg, keymap.reveal):
		item, ok := b.selectedItem()
		if !ok {
			return b, nil
		}
		return b, b.revealEntry(item.entry)
	}

	return b, b.updateComponents(msg)
}

func (b *statefulBubble) updateFilterState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keymap := b.keymap

	switch {
	case bubblesKey.Matches(msg, keymap.back):
		b.filterC.Blur()
		b.previousState()
		return b, nil

	case bubblesKey.Matches(msg, keymap.acceptSuggestion):
		if suggestion, ok := b.filterSuggestion.Get(); ok {
			b.filterC.SetValue(suggestion)
			b.filterC.CursorEnd()
		}
		return b, nil

	case bubblesKey.Matches(msg, keymap.confirm):
		return b, b.applyFilter()
	}

	var cmd tea.Cmd
	b.filterC, cmd = b.filterC.Update(msg)
	b.suggestFilter()
	return b, cmd
}

func (b *statefulBubble) updateAddState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keymap := b.keymap

	switch {
	case bubblesKey.Matches(msg, keymap.back):
		b.addC.Blur()
		b.previousState()
		return b, nil

	case bubblesKey.Matches(msg, keymap.confirm):
		return b, b.addPath(b.addC.Value())
	}

	var cmd tea.Cmd
	b.addC, cmd = b.addC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateScrubState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		keymap = b.keymap
		step   = viper.GetInt(key.PlayerSeekStep) * 1000
	)

	switch {
	case bubblesKey.Matches(msg, keymap.back):
		b.controller.CancelDrag()
		b.previousState()
		return b, nil

	case bubblesKey.Matches(msg, keymap.confirm):
		b.controller.EndDrag(b.scrubPositionMs)
		b.previousState()
		return b, nil

	case bubblesKey.Matches(msg, keymap.seekForward):
		b.scrubPositionMs = b.clampScrub(b.scrubPositionMs + step)
		return b, nil

	case bubblesKey.Matches(msg, keymap.seekBack):
		b.scrubPositionMs = b.clampScrub(b.scrubPositionMs - step)
		return b, nil
	}

	return b, nil
}

func (b *statefulBubble) updateErrorState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keymap := b.keymap

	switch {
	case bubblesKey.Matches(msg, keymap.quit):
		return b, tea.Quit

	case bubblesKey.Matches(msg, keymap.back):
		b.previousState()
		return b, b.syncPlaylist()
	}

	return b, nil
}

// updateComponents forwards messages to the component owning the active state.
func (b *statefulBubble) updateComponents(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch b.state {
	case playlistState:
		b.playlistC, cmd = b.playlistC.Update(msg)
	case filterState:
		b.filterC, cmd = b.filterC.Update(msg)
	case addState:
		b.addC, cmd = b.addC.Update(msg)
	}

	return cmd
}
