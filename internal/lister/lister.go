package lister

import (
	"os"
	"path/filepath"
)

// Entry is one directory child as seen at listing time. Nothing is cached:
// callers re-list whenever freshness matters, and an operation on a path that
// vanished since listing surfaces the OS error when it runs.
type Entry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	IsDir bool   `json:"isDir"`
}

// Dirs returns the immediate child directories of path, sorted by name.
// Symlinks are excluded even when they point at directories.
func Dirs(path string) ([]Entry, error) {
	return children(path, true)
}

// Files returns the immediate regular files of path, sorted by name, each
// with its size. Symlinks are excluded even when they point at files.
func Files(path string) ([]Entry, error) {
	return children(path, false)
}

func children(path string, wantDirs bool) ([]Entry, error) {
	// os.ReadDir returns entries sorted by filename.
	des, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		if de.Type()&os.ModeSymlink != 0 {
			continue
		}
		if wantDirs != de.IsDir() {
			continue
		}
		if !wantDirs && !de.Type().IsRegular() {
			continue
		}
		e := Entry{
			Name:  de.Name(),
			Path:  filepath.Join(path, de.Name()),
			IsDir: de.IsDir(),
		}
		if !wantDirs {
			info, err := de.Info()
			if err != nil {
				// Vanished between ReadDir and stat; leave it out.
				continue
			}
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}
	return entries, nil
}
