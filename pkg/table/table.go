// Package table lays tabular data out into rounded Unicode box-drawing
// grids sized to the live terminal width, with optional in-place redraw
// when the terminal is resized.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/textutil"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorFunc styles an already padded cell. It receives the full row so the
// style can depend on fields that are not rendered as columns.
type ColorFunc func(text string, row Row) string

// Row maps column keys to displayable values. Keys without a matching
// column are ignored by the renderer but remain visible to ColorFuncs.
type Row map[string]any

// ColumnSpec describes a single column. Exactly one sizing mode applies:
// fixed (Width > 0), flexible (Flex > 0, bounded by MinWidth/MaxWidth) or
// content-fit (neither, sized to the widest value clamped to the bounds).
type ColumnSpec struct {
	Key      string
	Header   string
	Width    int
	MinWidth int
	MaxWidth int
	Flex     float64
	Align    textutil.Align
	Color    ColorFunc
}

// Options control table chrome and overflow behavior. WrapMode expands a
// logical row into multiple physical lines instead of truncating.
type Options struct {
	Title           string
	ShowRowNumbers  bool
	RowNumberHeader string
	WrapMode        bool
}

// Table renders one column/row set. It retains the last block it wrote so
// the resize handle can erase and redraw it in place.
type Table struct {
	columns []ColumnSpec
	rows    []Row
	opts    Options

	out     io.Writer
	widthFn func() int

	mu        sync.Mutex
	lastBlock string
	renders   int
}

// New builds a table over the given columns and rows. Output defaults to
// stdout; see SetOutput.
func New(columns []ColumnSpec, rows []Row, opts Options) *Table {
	t := &Table{
		columns: columns,
		rows:    rows,
		opts:    opts,
		out:     os.Stdout,
	}
	t.widthFn = t.terminalWidth
	return t
}

// SetOutput redirects rendering to w. Resize watching only activates when
// w is an interactive terminal.
func (t *Table) SetOutput(w io.Writer) {
	t.out = w
}

// Render writes the table once at the current terminal width.
func (t *Table) Render() {
	t.renderAt(t.widthFn())
}

func (t *Table) renderAt(width int) {
	block := t.renderBlock(width)
	t.mu.Lock()
	t.lastBlock = block
	t.renders++
	t.mu.Unlock()
	fmt.Fprint(t.out, block)
}

// Terminal width bounds. The cap keeps tables readable on very wide
// terminals; the floor keeps the layout math defined on degenerate ones.
const (
	minTermWidth     = 20
	maxTermWidth     = 200
	defaultTermWidth = 80
)

func (t *Table) terminalWidth() int {
	if f, ok := t.out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return clamp(w, minTermWidth, maxTermWidth)
		}
	}
	return defaultTermWidth
}

func (t *Table) interactive() bool {
	f, ok := t.out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// cellText coerces a row value to its display string. Missing or nil
// values render as empty cells.
func cellText(row Row, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// visualLines counts the terminal rows a block occupies once the terminal
// wraps its lines at the given width. Used to know how far to move the
// cursor up before an in-place redraw.
func visualLines(block string, width int) int {
	block = strings.TrimSuffix(block, "\n")
	if block == "" {
		return 0
	}
	n := 0
	for _, line := range strings.Split(block, "\n") {
		rows := 1
		if w := textutil.Width(line); width > 0 && w > width {
			rows = (w + width - 1) / width
		}
		n += rows
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
