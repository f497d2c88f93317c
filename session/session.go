// Package session persists the playlist and transport state between runs.
package session

import (
	"github.com/cine-cli/cine/filesystem"
	"github.com/cine-cli/cine/playback"
	"github.com/cine-cli/cine/where"
	"github.com/metafates/gache"
)

// cacher provides an abstracted, disk-backed store for the last session.
var cacher = gache.New[*playback.Snapshot](
	&gache.Options{
		Path:       where.Session(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Load returns the saved session snapshot. The second return is false
// when no session was saved.
func Load() (*playback.Snapshot, bool, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, false, err
	}
	if expired || cached == nil {
		return nil, false, nil
	}
	return cached, true, nil
}

// Save persists the given snapshot as the last session.
func Save(snapshot playback.Snapshot) error {
	return cacher.Set(&snapshot)
}

// Clear removes the saved session.
func Clear() error {
	return cacher.Set(nil)
}
