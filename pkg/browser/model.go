package browser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"

	"github.com/caphefalumi/Canvas-CLI-sub001/internal/log"
	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/textutil"
)

// reloadMsg asks the model to rescan the current directory. Sent by the
// fsnotify forwarder when watching is enabled, equivalent to pressing r.
type reloadMsg struct{}

// entry wraps an Item with the parent pseudo-entry flag.
type entry struct {
	Item
	parent bool
}

func (e entry) displayName() string {
	if e.parent {
		return ".."
	}
	if e.Dir {
		return e.Name + "/"
	}
	return e.Name
}

type model struct {
	cfg  options
	root string
	dir  string

	entries []entry
	cursor  int
	width   int
	height  int

	sel     *selection
	help    help.Model
	watcher *fsnotify.Watcher
}

func newModel(root string, o options) *model {
	m := &model{
		cfg:    o,
		root:   root,
		dir:    root,
		sel:    newSelection(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.rescan()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case reloadMsg:
		m.rescan()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Abort):
		m.sel.Clear()
		return m, tea.Quit
	case key.Matches(msg, keys.Done):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, keys.Down):
		m.moveCursor(m.columns())
	case key.Matches(msg, keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, keys.Select):
		// Directories are not selectable.
		if e := m.current(); e != nil && !e.Dir {
			m.sel.Toggle(e.Path)
		}
	case key.Matches(msg, keys.Open):
		e := m.current()
		switch {
		case e != nil && e.Dir:
			m.navigate(e.Path)
		case m.sel.Len() > 0:
			return m, tea.Quit
		}
	case key.Matches(msg, keys.Parent):
		if m.dir != m.root {
			m.navigate(filepath.Dir(m.dir))
		}
	case key.Matches(msg, keys.All):
		for _, e := range m.entries {
			if !e.Dir {
				m.sel.Add(e.Path)
			}
		}
	case key.Matches(msg, keys.Clear):
		m.sel.Clear()
	case key.Matches(msg, keys.Reload):
		m.rescan()
	}
	return m, nil
}

// navigate switches the browser to target and rescans. Targets outside
// the session root are refused.
func (m *model) navigate(target string) {
	if !within(m.root, target) {
		return
	}
	if m.watcher != nil {
		_ = m.watcher.Remove(m.dir)
		if err := m.watcher.Add(target); err != nil {
			log.Debugf("browser: watch %s: %v", target, err)
		}
	}
	m.dir = target
	m.cursor = 0
	m.rescan()
}

// rescan rebuilds the entry list from the lister. An unreadable directory
// yields an empty listing, never an error surfaced to the user.
func (m *model) rescan() {
	items, err := m.cfg.lister.List(m.dir)
	if err != nil {
		log.Debugf("browser: list %s: %v", m.dir, err)
		items = nil
	}
	m.entries = m.entries[:0]
	if m.dir != m.root {
		m.entries = append(m.entries, entry{
			Item:   Item{Name: "..", Path: filepath.Dir(m.dir), Dir: true},
			parent: true,
		})
	}
	for _, it := range items {
		if !it.Dir && !m.cfg.allows(it.Name) {
			continue
		}
		m.entries = append(m.entries, entry{Item: it})
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, len(m.entries)-1)
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) current() *entry {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return &m.entries[m.cursor]
	}
	return nil
}

// Grid geometry. Cell width tracks the longest visible name, clamped so a
// single long name cannot collapse the grid to one column.
const (
	gridMargin   = 2
	minCellWidth = 14
	maxCellWidth = 40
)

func (m *model) cellWidth() int {
	longest := 0
	for _, e := range m.entries {
		if w := textutil.Width(e.displayName()); w > longest {
			longest = w
		}
	}
	return clamp(longest+4, minCellWidth, maxCellWidth)
}

func (m *model) columns() int {
	cols := (m.width - gridMargin) / m.cellWidth()
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select files: " + m.dir))
	b.WriteString("\n\n")
	if len(m.entries) == 0 {
		b.WriteString(emptyStyle.Render("No entries in this directory"))
		b.WriteString("\n")
	} else {
		m.writeGrid(&b)
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m *model) writeGrid(b *strings.Builder) {
	cols := m.columns()
	cw := m.cellWidth()
	rows := (len(m.entries) + cols - 1) / cols

	// Reserve lines for title, status and help chrome.
	maxRows := m.height - 6
	if maxRows < 1 {
		maxRows = 1
	}
	first := 0
	if rows > maxRows {
		cursorRow := m.cursor / cols
		first = clamp(cursorRow-maxRows/2, 0, rows-maxRows)
	}
	last := first + maxRows
	if last > rows {
		last = rows
	}

	for r := first; r < last; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(m.entries) {
				break
			}
			b.WriteString(m.renderCell(idx, cw))
		}
		b.WriteString("\n")
	}
}

func (m *model) renderCell(idx, cw int) string {
	e := m.entries[idx]
	marker := "  "
	if m.sel.Has(e.Path) {
		marker = "✓ "
	}
	label := textutil.Truncate(e.displayName(), cw-3)
	cell := textutil.Pad(marker+label, cw, textutil.AlignLeft)
	switch {
	case idx == m.cursor:
		return cursorStyle.Render(cell)
	case m.sel.Has(e.Path):
		return selectedStyle.Render(cell)
	case e.Dir:
		return dirStyle.Render(cell)
	default:
		return unselectedStyle.Render(cell)
	}
}

func (m *model) statusLine() string {
	parts := []string{fmt.Sprintf("%d selected", m.sel.Len())}
	if e := m.current(); e != nil && !e.Dir {
		if e.Size >= 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Name, humanize.Bytes(uint64(e.Size))))
		} else {
			parts = append(parts, e.Name+" (size unknown)")
		}
	}
	return statusStyle.Render(strings.Join(parts, "  ·  "))
}

// within reports whether dir is root itself or a descendant of it.
func within(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
