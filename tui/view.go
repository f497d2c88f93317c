// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/cine-cli/cine/color"
	"github.com/cine-cli/cine/icon"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// transportBarHeight is the number of terminal rows the transport bar occupies.
const transportBarHeight = 3

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case playlistState:
		output = b.viewPlaylist()
	case filterState:
		output = b.viewFilter()
	case addState:
		output = b.viewAdd()
	case scrubState:
		output = b.viewScrub()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewPlaylist() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		listExtraPaddingStyle.Render(b.playlistC.View()),
		paddingStyle.Render(b.viewTransportBar(b.controller.Transport().PositionMs)),
	)
}

// viewTransportBar renders the progress bar and status line shared by the
// playlist and scrub views.
func (b *statefulBubble) viewTransportBar(positionMs int) string {
	transport := b.controller.Transport()

	var bar string
	if transport.LengthMs > 0 {
		bar = b.progressC.ViewAs(float64(positionMs) / float64(transport.LengthMs))
	} else {
		bar = b.progressC.ViewAs(0)
	}

	stateIcon := icon.Get(icon.Stop)
	if transport.IsPlaying {
		stateIcon = icon.Get(icon.Play)
	} else if b.controller.PollArmed() {
		stateIcon = icon.Get(icon.Pause)
	}

	volume := fmt.Sprintf("%s %d%%", icon.Get(icon.Volume), transport.Volume)
	if transport.Muted {
		volume = fmt.Sprintf("%s muted", icon.Get(icon.Mute))
	}

	var title string
	if i := b.controller.Playlist().Current(); i >= 0 {
		if entry, ok := b.controller.Playlist().At(i); ok {
			title = entry.Title
		}
	}

	status := fmt.Sprintf(
		"%s %s  %s / %s  %s",
		stateIcon,
		style.Fg(color.Purple)(title),
		util.FormatMs(positionMs),
		util.FormatMs(transport.LengthMs),
		style.Faint(volume),
	)

	return bar + "\n" + style.Truncate(b.width)(status)
}

func (b *statefulBubble) viewFilter() string {
	lines := []string{
		style.Title("Filter Playlist"),
		"",
		b.filterC.View(),
	}

	if suggestion, ok := b.filterSuggestion.Get(); ok {
		lines = append(lines, "", style.Faint("suggestion: ")+style.Fg(color.Yellow)(suggestion))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewAdd() string {
	lines := []string{
		style.Title("Add Media"),
		"",
		b.addC.View(),
		"",
		style.Faint("Directories are scanned recursively for playable files"),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewScrub() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Scrub"),
			"",
			b.viewTransportBar(b.scrubPositionMs),
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
