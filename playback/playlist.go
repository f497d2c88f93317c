// Package playback implements the playlist model and the transport controller
// that drives an external playback engine.
package playback

import (
	"sort"

	"github.com/cine-cli/cine/util"
)

// Entry is a single playlist item.
type Entry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// NewEntry builds an entry for a media file path, deriving the display
// title from the file stem.
func NewEntry(path string) Entry {
	return Entry{
		Path:  path,
		Title: util.FileStem(path),
	}
}

// Playlist is an ordered collection of unique media paths with a single
// selection. The selection index is -1 when nothing is selected.
type Playlist struct {
	entries []Entry
	current int
}

// NewPlaylist returns an empty playlist with no selection.
func NewPlaylist() *Playlist {
	return &Playlist{current: -1}
}

// Add appends entries for paths not already present and returns how many
// were added. Adding to an empty playlist selects the first entry without
// starting playback.
func (p *Playlist) Add(paths ...string) int {
	seen := make(map[string]struct{}, len(p.entries))
	for _, e := range p.entries {
		seen[e.Path] = struct{}{}
	}

	added := 0
	for _, path := range paths {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		p.entries = append(p.entries, NewEntry(path))
		added++
	}

	if p.current == -1 && len(p.entries) > 0 {
		p.current = 0
	}

	return added
}

// Remove deletes the entries at the given indices. Out-of-range and
// duplicate indices are ignored. It reports whether the selected entry
// was among the removed ones. The selection keeps its numeric position
// afterwards, clamped to the new tail.
func (p *Playlist) Remove(indices []int) (removedCurrent bool) {
	if len(indices) == 0 {
		return false
	}

	unique := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(p.entries) {
			unique[i] = struct{}{}
		}
	}
	if len(unique) == 0 {
		return false
	}

	if _, ok := unique[p.current]; ok {
		removedCurrent = true
	}

	// Delete from the highest index down so earlier positions stay valid.
	ordered := make([]int, 0, len(unique))
	for i := range unique {
		ordered = append(ordered, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	for _, i := range ordered {
		p.entries = append(p.entries[:i], p.entries[i+1:]...)
	}

	if len(p.entries) == 0 {
		p.current = -1
	} else if p.current >= len(p.entries) {
		p.current = len(p.entries) - 1
	}

	return removedCurrent
}

// Clear removes every entry and drops the selection.
func (p *Playlist) Clear() {
	p.entries = nil
	p.current = -1
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// At returns the entry at the given index.
func (p *Playlist) At(i int) (Entry, bool) {
	if i < 0 || i >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Current returns the selection index, -1 if nothing is selected.
func (p *Playlist) Current() int {
	return p.current
}

// Select moves the selection to the given index.
func (p *Playlist) Select(i int) error {
	if i < 0 || i >= len(p.entries) {
		return ErrOutOfRange
	}
	p.current = i
	return nil
}

// NextIndex returns the index following the selection, wrapping to the
// start. The second return is false when the playlist is empty.
func (p *Playlist) NextIndex() (int, bool) {
	n := len(p.entries)
	if n == 0 {
		return -1, false
	}
	return (p.current + 1) % n, true
}

// PrevIndex returns the index preceding the selection, wrapping to the
// end. The second return is false when the playlist is empty.
func (p *Playlist) PrevIndex() (int, bool) {
	n := len(p.entries)
	if n == 0 {
		return -1, false
	}
	return ((p.current-1)%n + n) % n, true
}

// Entries returns a copy of the entry slice.
func (p *Playlist) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}
