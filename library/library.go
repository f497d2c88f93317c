// Package library discovers playable media files on disk.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cine-cli/cine/filesystem"
	"github.com/samber/lo"
)

// mediaExtensions is the fixed allow-list of playable file extensions.
var mediaExtensions = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".avi":  {},
	".mov":  {},
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".m4a":  {},
	".aac":  {},
	".ogg":  {},
}

// IsMedia reports whether the path carries a playable extension.
func IsMedia(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := mediaExtensions[ext]
	return ok
}

// Extensions returns the allow-list as a sorted slice.
func Extensions() []string {
	exts := lo.Keys(mediaExtensions)
	sort.Strings(exts)
	return exts
}

// Scan walks root recursively and returns the playable files found, in
// lexical walk order. Hidden directories are skipped.
func Scan(root string) ([]string, error) {
	var found []string

	err := filesystem.API().Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if name := info.Name(); strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if IsMedia(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Expand resolves each argument into playable files. Directories are
// scanned recursively, plain files are kept when playable. Order follows
// the arguments.
func Expand(args []string) ([]string, error) {
	var out []string

	for _, arg := range args {
		isDir, err := filesystem.API().IsDir(arg)
		if err != nil {
			return nil, err
		}

		if isDir {
			files, err := Scan(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, files...)
			continue
		}

		if IsMedia(arg) {
			out = append(out, arg)
		}
	}

	return out, nil
}
