package table

import (
	"strconv"

	"github.com/caphefalumi/Canvas-CLI-sub001/pkg/textutil"
)

// colFloor is the hard minimum any column can be shrunk to. Below four
// cells a truncated value degenerates to pure ellipsis.
const colFloor = 4

// rowNumWidth returns the width of the row-number gutter, or 0 when row
// numbers are disabled. Wide enough for the header and the largest number.
func (t *Table) rowNumWidth() int {
	if !t.opts.ShowRowNumbers {
		return 0
	}
	header := t.opts.RowNumberHeader
	if header == "" {
		header = "#"
	}
	w := len(strconv.Itoa(len(t.rows)))
	if hw := textutil.Width(header); hw > w {
		w = hw
	}
	return w
}

// borderOverhead is the cell count consumed by the frame: a "│ " prefix
// and " " suffix per column plus the closing "│", and the row-number
// gutter when present.
func (t *Table) borderOverhead() int {
	overhead := 3*len(t.columns) + 1
	if rw := t.rowNumWidth(); rw > 0 {
		overhead += rw + 3
	}
	return overhead
}

// allocateWidths computes one width per column for the given terminal
// width. Three passes: content sizing, flex distribution of the leftover
// budget, then a force-fit shrink of the currently widest column until the
// table fits or every column is at the floor.
func (t *Table) allocateWidths(termWidth int) []int {
	n := len(t.columns)
	if n == 0 {
		return nil
	}
	widths := make([]int, n)

	for i, col := range t.columns {
		switch {
		case col.Width > 0:
			widths[i] = col.Width
		case col.Flex > 0:
			widths[i] = col.MinWidth
			if widths[i] < colFloor {
				widths[i] = colFloor
			}
		default:
			content := textutil.Width(col.Header)
			for _, row := range t.rows {
				if w := textutil.Width(cellText(row, col.Key)); w > content {
					content = w
				}
			}
			widths[i] = clampColumn(content, col.MinWidth, col.MaxWidth)
		}
	}

	available := termWidth - t.borderOverhead()

	var totalFlex float64
	for _, col := range t.columns {
		if col.Flex > 0 {
			totalFlex += col.Flex
		}
	}
	if totalFlex > 0 {
		remaining := available - sum(widths)
		if remaining > 0 {
			for i, col := range t.columns {
				if col.Flex <= 0 {
					continue
				}
				w := widths[i] + int(float64(remaining)*col.Flex/totalFlex)
				if col.MaxWidth > 0 && w > col.MaxWidth {
					w = col.MaxWidth
				}
				widths[i] = w
			}
		}
	}

	for sum(widths) > available && sum(widths) > n*colFloor {
		idx := widestColumn(widths)
		if widths[idx] <= colFloor {
			break
		}
		widths[idx]--
	}

	return widths
}

func clampColumn(w, minW, maxW int) int {
	if minW > 0 && w < minW {
		w = minW
	}
	if maxW > 0 && w > maxW {
		w = maxW
	}
	if w < 1 {
		w = 1
	}
	return w
}

func widestColumn(widths []int) int {
	idx := 0
	for i := 1; i < len(widths); i++ {
		if widths[i] > widths[idx] {
			idx = i
		}
	}
	return idx
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
