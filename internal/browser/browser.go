// Package browser lists directories for the file browser screens.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Item is one directory entry.
type Item struct {
	Name    string
	Path    string
	Dir     bool
	Size    int64
	ModTime time.Time
}

// Options controls filtering and ordering.
type Options struct {
	ShowHidden       bool
	DirectoriesFirst bool
}

// Load reads dir and returns its entries ordered case-insensitively by name,
// with directories ahead of files when DirectoriesFirst is set. Entries that
// vanish while being read are skipped.
func Load(dir string, opts Options) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}
		isDir := entry.IsDir()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				isDir = target.IsDir()
				info = target
			}
		}
		item := Item{Name: name, Path: path, Dir: isDir, ModTime: info.ModTime()}
		if !isDir {
			item.Size = info.Size()
		}
		items = append(items, item)
	}
	Sort(items, opts.DirectoriesFirst)
	return items, nil
}

// Sort orders items in place.
func Sort(items []Item, directoriesFirst bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if directoriesFirst && a.Dir != b.Dir {
			return a.Dir
		}
		al, bl := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if al != bl {
			return al < bl
		}
		return a.Name < b.Name
	})
}

// Parent returns the directory above dir, and false at the filesystem root.
func Parent(dir string) (string, bool) {
	clean := filepath.Clean(dir)
	parent := filepath.Dir(clean)
	if parent == clean {
		return clean, false
	}
	return parent, true
}
