package browser

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/caphefalumi/Canvas-CLI-sub001/internal/log"
)

// Item is a single directory entry as seen by the browser.
type Item struct {
	Name string
	Path string
	Dir  bool
	Size int64 // -1 when the size could not be read
}

// Lister supplies one level of directory entries. The browser re-lists on
// every navigation or reload; it never patches a listing incrementally.
// Tests supply a fake Lister so no real filesystem is needed.
type Lister interface {
	List(dir string) ([]Item, error)
}

// osLister reads the real filesystem.
type osLister struct{}

func (osLister) List(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		it := Item{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Dir:  e.IsDir(),
		}
		if !it.Dir {
			info, err := e.Info()
			if err != nil {
				// Entry vanished or is unstatable; keep it, without a size.
				log.Debugf("browser: stat %s: %v", it.Path, err)
				it.Size = -1
			} else {
				it.Size = info.Size()
			}
		}
		items = append(items, it)
	}
	sortItems(items)
	return items, nil
}

// sortItems orders directories before files, each group by name.
func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Dir != items[j].Dir {
			return items[i].Dir
		}
		return items[i].Name < items[j].Name
	})
}
