// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	"github.com/cine-cli/cine/internal/ui"
	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/query"
	"github.com/cine-cli/cine/style"
	"github.com/cine-cli/cine/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	controller *playback.Controller

	// components
	playlistC list.Model
	filterC   textinput.Model
	addC      textinput.Model
	progressC progress.Model
	helpC     help.Model

	// ticking guards against stacking more than one poll chain.
	ticking bool

	// filterQuery is the applied playlist filter, empty when inactive.
	filterQuery      string
	filterSuggestion mo.Option[string]

	// scrubPositionMs is the pending position while scrub mode is active.
	scrubPositionMs int

	// lastCurrent tracks the selection between polls so track changes can
	// checkpoint the session.
	lastCurrent int

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push transient states to history
	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		s := b.statesHistory.Pop()
		b.setState(s)
	} else {
		b.setState(playlistState)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy - transportBarHeight

	b.playlistC.SetSize(listWidth, listHeight)
	b.playlistC.Help.Width = listWidth

	b.progressC.Width = styledWidth
	b.filterC.Width = listWidth
	b.addC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// syncPlaylist rebuilds the visible list from the playlist, honoring the
// active filter. The selection marker follows the playlist, not the cursor.
func (b *statefulBubble) syncPlaylist() tea.Cmd {
	var (
		items     []list.Item
		transport = b.controller.Transport()
		current   = b.controller.Playlist().Current()
	)

	for i, entry := range b.controller.Playlist().Entries() {
		if b.filterQuery != "" && !fuzzy.MatchFold(b.filterQuery, entry.Title) {
			continue
		}

		items = append(items, &listItem{
			entry:    entry,
			index:    i,
			selected: i == current,
			playing:  transport.IsPlaying,
		})
	}

	return b.playlistC.SetItems(items)
}

// selectedItem returns the list item under the cursor.
func (b *statefulBubble) selectedItem() (*listItem, bool) {
	item, ok := b.playlistC.SelectedItem().(*listItem)
	return item, ok
}

// suggestFilter refreshes the inline suggestion for the filter input.
func (b *statefulBubble) suggestFilter() {
	input := b.filterC.Value()
	if input == "" {
		b.filterSuggestion = mo.None[string]()
		return
	}

	b.filterSuggestion = query.Suggest(input)
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(controller *playback.Controller, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		controller:    controller,
		notifier:      &ui.Model{},
		options:       options,
		lastCurrent:   controller.Playlist().Current(),
	}

	makeList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = viper.GetBool(key.TUIShowPaths)
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetFilteringEnabled(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.playlistC = makeList("Playlist")
	bubble.playlistC.SetStatusBarItemName("entry", "entries")

	bubble.progressC = progress.New(progress.WithDefaultGradient())
	bubble.progressC.ShowPercentage = false

	bubble.filterC = textinput.New()
	bubble.filterC.Placeholder = "Filter playlist"
	bubble.filterC.CharLimit = 60
	bubble.filterC.Prompt = "/ "

	bubble.addC = textinput.New()
	bubble.addC.Placeholder = "File or directory path"
	bubble.addC.CharLimit = 255
	bubble.addC.Prompt = "+ "

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
