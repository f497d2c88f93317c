// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cine-cli/cine/internal/ui"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/library"
	"github.com/cine-cli/cine/log"
	"github.com/cine-cli/cine/open"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/query"
	"github.com/cine-cli/cine/session"
	"github.com/cine-cli/cine/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// playEntry starts playback of the playlist entry at the given index and
// arms the poll chain.
func (b *statefulBubble) playEntry(index int) tea.Cmd {
	if err := b.controller.SelectAndPlay(index); err != nil {
		return b.reportPlaybackError(err)
	}

	return tea.Batch(b.syncPlaylist(), b.startPolling())
}

// reportPlaybackError routes load failures to the error view, where the
// full message fits, and everything else to an ephemeral notification.
func (b *statefulBubble) reportPlaybackError(err error) tea.Cmd {
	var loadErr *playback.LoadError
	if errors.As(err, &loadErr) {
		log.Error(err)
		b.raiseError(err)
		return nil
	}
	return b.notifyError(err)
}

// addPath expands the entered path and appends the playable files found.
func (b *statefulBubble) addPath(path string) tea.Cmd {
	if path == "" {
		return nil
	}

	files, err := library.Expand([]string{path})
	if err != nil {
		return b.notifyError(err)
	}

	if len(files) == 0 {
		return b.notify("no playable files found")
	}

	added := b.controller.Add(files...)

	b.addC.Blur()
	b.previousState()

	return tea.Batch(
		b.syncPlaylist(),
		b.notify(fmt.Sprintf("added %s", util.Quantify(added, "file", "files"))),
	)
}

// applyFilter commits the filter input, remembering non-empty queries for
// future suggestions.
func (b *statefulBubble) applyFilter() tea.Cmd {
	b.filterQuery = b.filterC.Value()

	if b.filterQuery != "" {
		if err := query.Remember(b.filterQuery, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}
	}

	b.filterC.Blur()
	b.previousState()
	return b.syncPlaylist()
}

// revealEntry opens the entry's directory with the system file handler.
func (b *statefulBubble) revealEntry(entry playback.Entry) tea.Cmd {
	if err := open.Start(filepath.Dir(entry.Path)); err != nil {
		return b.notifyError(err)
	}

	return b.notify("revealed " + entry.Title)
}

// checkpointSession saves the session when the playing entry changed, so
// a crash or kill mid-queue does not lose the position in it.
func (b *statefulBubble) checkpointSession() {
	current := b.controller.Playlist().Current()
	if current == b.lastCurrent {
		return
	}
	b.lastCurrent = current

	if !viper.GetBool(key.SessionSaveOnExit) {
		return
	}
	if err := session.Save(b.controller.Snapshot()); err != nil {
		log.Warnf("save session: %s", err)
	}
}

// notify shows an ephemeral status message.
func (b *statefulBubble) notify(message string) tea.Cmd {
	return ui.Notify(message)
}

// notifyError surfaces a non-fatal error as a notification and logs it.
func (b *statefulBubble) notifyError(err error) tea.Cmd {
	log.Error(err)
	return b.notify(err.Error())
}

// clampScrub keeps a pending scrub position inside the playable range.
func (b *statefulBubble) clampScrub(ms int) int {
	max := b.controller.Transport().LengthMs - 500
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
