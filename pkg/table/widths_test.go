package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateWidthsFlexAndFixed(t *testing.T) {
	tbl := New([]ColumnSpec{
		{Key: "name", Header: "Name", Flex: 1, MinWidth: 15},
		{Key: "id", Header: "ID", Width: 8},
	}, []Row{
		{"name": "alpha", "id": 1},
		{"name": "beta", "id": 2},
		{"name": "gamma", "id": 3},
	}, Options{})

	widths := tbl.allocateWidths(50)
	require.Len(t, widths, 2)
	assert.Equal(t, 8, widths[1])
	// name absorbs everything the id column and the frame leave over
	assert.Equal(t, 50-8-tbl.borderOverhead(), widths[0])
	assert.GreaterOrEqual(t, widths[0], 15)
}

func TestAllocateWidthsFitInvariant(t *testing.T) {
	cases := []struct {
		name      string
		columns   []ColumnSpec
		rows      []Row
		termWidth int
	}{
		{
			name: "content_fit",
			columns: []ColumnSpec{
				{Key: "a", Header: "A"},
				{Key: "b", Header: "B"},
			},
			rows:      []Row{{"a": "some moderately long value", "b": "x"}},
			termWidth: 40,
		},
		{
			name: "wide_fixed_columns_in_narrow_terminal",
			columns: []ColumnSpec{
				{Key: "a", Header: "A", Width: 30},
				{Key: "b", Header: "B", Width: 30},
				{Key: "c", Header: "C", Width: 30},
			},
			rows:      []Row{},
			termWidth: 30,
		},
		{
			name: "competing_minimums",
			columns: []ColumnSpec{
				{Key: "a", Header: "A", Flex: 1, MinWidth: 40},
				{Key: "b", Header: "B", Flex: 2, MinWidth: 40},
			},
			rows:      []Row{},
			termWidth: 50,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New(tc.columns, tc.rows, Options{})
			widths := tbl.allocateWidths(tc.termWidth)

			for _, w := range widths {
				assert.GreaterOrEqual(t, w, 1, "no column may vanish")
			}
			available := tc.termWidth - tbl.borderOverhead()
			floor := len(tc.columns) * colFloor
			if sum(widths) > available {
				// Only permitted at the unshrinkable floor.
				assert.Equal(t, floor, sum(widths))
			}
		})
	}
}

func TestAllocateWidthsContentFit(t *testing.T) {
	t.Run("sized_to_widest_value", func(t *testing.T) {
		tbl := New([]ColumnSpec{{Key: "a", Header: "A"}}, []Row{
			{"a": "short"},
			{"a": "much longer value"},
		}, Options{})
		widths := tbl.allocateWidths(80)
		assert.Equal(t, len("much longer value"), widths[0])
	})

	t.Run("clamped_to_max", func(t *testing.T) {
		tbl := New([]ColumnSpec{{Key: "a", Header: "A", MaxWidth: 10}}, []Row{
			{"a": "much longer value"},
		}, Options{})
		widths := tbl.allocateWidths(80)
		assert.Equal(t, 10, widths[0])
	})

	t.Run("clamped_to_min", func(t *testing.T) {
		tbl := New([]ColumnSpec{{Key: "a", Header: "A", MinWidth: 12}}, []Row{
			{"a": "x"},
		}, Options{})
		widths := tbl.allocateWidths(80)
		assert.Equal(t, 12, widths[0])
	})

	t.Run("zero_rows_sized_to_header", func(t *testing.T) {
		tbl := New([]ColumnSpec{{Key: "a", Header: "Header"}}, nil, Options{})
		widths := tbl.allocateWidths(80)
		assert.Equal(t, len("Header"), widths[0])
	})
}

func TestAllocateWidthsFlexCap(t *testing.T) {
	tbl := New([]ColumnSpec{
		{Key: "a", Header: "A", Flex: 1, MinWidth: 5, MaxWidth: 12},
		{Key: "b", Header: "B", Width: 6},
	}, nil, Options{})
	widths := tbl.allocateWidths(100)
	assert.Equal(t, 12, widths[0], "flex growth respects MaxWidth")
	assert.Equal(t, 6, widths[1])
}

func TestRowNumWidth(t *testing.T) {
	rows := make([]Row, 120)
	for i := range rows {
		rows[i] = Row{"a": i}
	}
	tbl := New([]ColumnSpec{{Key: "a", Header: "A"}}, rows, Options{
		ShowRowNumbers:  true,
		RowNumberHeader: "#",
	})
	assert.Equal(t, 3, tbl.rowNumWidth(), "wide enough for row 120")

	tbl.opts.RowNumberHeader = "Item"
	assert.Equal(t, 4, tbl.rowNumWidth(), "wide enough for the header")

	tbl.opts.ShowRowNumbers = false
	assert.Equal(t, 0, tbl.rowNumWidth())
}
