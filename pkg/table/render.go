package table

import (
	"strconv"
	"strings"

	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/textutil"
)

// Box-drawing glyphs, rounded corners.
const (
	lineH    = "─"
	lineV    = "│"
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	teeDown  = "┬"
	teeUp    = "┴"
	teeRight = "├"
	teeLeft  = "┤"
	cross    = "┼"
)

// renderBlock draws the full table as one string ending in a newline.
func (t *Table) renderBlock(termWidth int) string {
	var b strings.Builder
	if t.opts.Title != "" {
		b.WriteString(titleStyle.Render(t.opts.Title))
		b.WriteByte('\n')
	}
	if len(t.columns) == 0 {
		return b.String()
	}

	widths := t.allocateWidths(termWidth)
	rnw := t.rowNumWidth()

	t.writeBorder(&b, widths, rnw, cornerTL, teeDown, cornerTR)
	t.writeHeader(&b, widths, rnw)
	t.writeBorder(&b, widths, rnw, teeRight, cross, teeLeft)
	for i, row := range t.rows {
		if t.opts.WrapMode {
			t.writeWrappedRow(&b, row, i, widths, rnw)
			if i < len(t.rows)-1 {
				t.writeSpacer(&b, widths, rnw)
			}
		} else {
			t.writeRow(&b, row, i, widths, rnw)
		}
	}
	t.writeBorder(&b, widths, rnw, cornerBL, teeUp, cornerBR)
	return b.String()
}

func (t *Table) writeBorder(b *strings.Builder, widths []int, rnw int, left, mid, right string) {
	var line strings.Builder
	line.WriteString(left)
	if rnw > 0 {
		line.WriteString(strings.Repeat(lineH, rnw+2))
		line.WriteString(mid)
	}
	for i, w := range widths {
		line.WriteString(strings.Repeat(lineH, w+2))
		if i < len(widths)-1 {
			line.WriteString(mid)
		}
	}
	line.WriteString(right)
	b.WriteString(borderStyle.Render(line.String()))
	b.WriteByte('\n')
}

// writeLine emits one physical line: optional gutter cell then one padded
// cell per column, separated by vertical border glyphs.
func (t *Table) writeLine(b *strings.Builder, gutter string, cells []string, rnw int) {
	sep := borderStyle.Render(lineV)
	b.WriteString(sep)
	if rnw > 0 {
		b.WriteString(" ")
		b.WriteString(gutter)
		b.WriteString(" ")
		b.WriteString(sep)
	}
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" ")
		b.WriteString(sep)
	}
	b.WriteByte('\n')
}

func (t *Table) writeHeader(b *strings.Builder, widths []int, rnw int) {
	header := t.opts.RowNumberHeader
	if header == "" {
		header = "#"
	}
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cell := textutil.Pad(textutil.Truncate(col.Header, widths[i]), widths[i], col.Align)
		cells[i] = headerStyle.Render(cell)
	}
	t.writeLine(b, headerStyle.Render(textutil.Pad(header, rnw, textutil.AlignRight)), cells, rnw)
}

func (t *Table) writeRow(b *strings.Builder, row Row, idx int, widths []int, rnw int) {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cell := textutil.Pad(textutil.Truncate(cellText(row, col.Key), widths[i]), widths[i], col.Align)
		if col.Color != nil {
			cell = col.Color(cell, row)
		}
		cells[i] = cell
	}
	gutter := textutil.Pad(strconv.Itoa(idx+1), rnw, textutil.AlignRight)
	t.writeLine(b, gutter, cells, rnw)
}

// writeWrappedRow expands one logical row into as many physical lines as
// its tallest cell. The row number and ColorFunc apply only to the first
// line; continuation lines get a blank gutter and plain styling.
func (t *Table) writeWrappedRow(b *strings.Builder, row Row, idx int, widths []int, rnw int) {
	cellLines := make([][]string, len(t.columns))
	height := 1
	for i, col := range t.columns {
		lines := textutil.WordWrap(cellText(row, col.Key), widths[i])
		if len(lines) > height {
			height = len(lines)
		}
		cellLines[i] = lines
	}

	for li := 0; li < height; li++ {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			val := ""
			if li < len(cellLines[i]) {
				val = cellLines[i][li]
			}
			cell := textutil.Pad(textutil.Truncate(val, widths[i]), widths[i], col.Align)
			if li == 0 && col.Color != nil {
				cell = col.Color(cell, row)
			}
			cells[i] = cell
		}
		gutter := textutil.Pad("", rnw, textutil.AlignRight)
		if li == 0 {
			gutter = textutil.Pad(strconv.Itoa(idx+1), rnw, textutil.AlignRight)
		}
		t.writeLine(b, gutter, cells, rnw)
	}
}

func (t *Table) writeSpacer(b *strings.Builder, widths []int, rnw int) {
	cells := make([]string, len(t.columns))
	for i := range cells {
		cells[i] = strings.Repeat(" ", widths[i])
	}
	t.writeLine(b, strings.Repeat(" ", rnw), cells, rnw)
}
