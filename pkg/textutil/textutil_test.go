package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	t.Run("plain_text_untouched", func(t *testing.T) {
		assert.Equal(t, "hello world", Strip("hello world"))
	})

	t.Run("csi_color_sequences", func(t *testing.T) {
		assert.Equal(t, "red", Strip("\x1b[31mred\x1b[0m"))
		assert.Equal(t, "bold and dim", Strip("\x1b[1mbold\x1b[22m and \x1b[2mdim\x1b[0m"))
	})

	t.Run("osc_sequences", func(t *testing.T) {
		assert.Equal(t, "text", Strip("\x1b]0;window title\x07text"))
		assert.Equal(t, "text", Strip("\x1b]8;;http://x\x1b\\text"))
	})

	t.Run("short_escape", func(t *testing.T) {
		assert.Equal(t, "x", Strip("\x1bcx"))
	})

	t.Run("trailing_escape", func(t *testing.T) {
		assert.Equal(t, "ab", Strip("ab\x1b"))
	})
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 5, Width("\x1b[32mhello\x1b[0m"))
	assert.Equal(t, 0, Width(""))
	// East Asian wide characters occupy two cells each.
	assert.Equal(t, 4, Width("日本"))
}

func TestPad(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		assert.Equal(t, "ab   ", Pad("ab", 5, AlignLeft))
	})

	t.Run("right", func(t *testing.T) {
		assert.Equal(t, "   ab", Pad("ab", 5, AlignRight))
	})

	t.Run("center", func(t *testing.T) {
		assert.Equal(t, " ab  ", Pad("ab", 5, AlignCenter))
	})

	t.Run("already_wide_enough", func(t *testing.T) {
		assert.Equal(t, "abcdef", Pad("abcdef", 5, AlignLeft))
	})

	t.Run("styled_string_pads_to_visible_width", func(t *testing.T) {
		styled := "\x1b[31mab\x1b[0m"
		padded := Pad(styled, 5, AlignLeft)
		assert.Equal(t, 5, Width(padded))
		assert.True(t, strings.HasPrefix(padded, styled))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("fits_unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abc", 5))
		// A styled string that fits keeps its styling.
		styled := "\x1b[31mabc\x1b[0m"
		assert.Equal(t, styled, Truncate(styled, 3))
	})

	t.Run("ellipsis", func(t *testing.T) {
		out := Truncate("abcdefghij", 7)
		assert.Equal(t, "abcd...", out)
		assert.Equal(t, 7, Width(out))
	})

	t.Run("hard_cut_at_three_or_less", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abcdef", 3))
		assert.Equal(t, "ab", Truncate("abcdef", 2))
		assert.Equal(t, "", Truncate("abcdef", 0))
	})

	t.Run("styling_dropped_when_truncated", func(t *testing.T) {
		out := Truncate("\x1b[31mabcdefghij\x1b[0m", 7)
		assert.Equal(t, "abcd...", out)
	})
}

func TestWordWrap(t *testing.T) {
	t.Run("greedy_packing", func(t *testing.T) {
		assert.Equal(t, []string{"aa bb", "cc"}, WordWrap("aa bb cc", 5))
	})

	t.Run("round_trip", func(t *testing.T) {
		in := "the quick brown fox jumps over the lazy dog"
		lines := WordWrap(in, 10)
		for _, line := range lines {
			assert.LessOrEqual(t, Width(line), 10)
		}
		rejoined := strings.Join(lines, " ")
		assert.Equal(t, strings.Fields(in), strings.Fields(rejoined))
	})

	t.Run("hard_split_long_word", func(t *testing.T) {
		lines := WordWrap("abcdefghij", 4)
		assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
		// No character loss across the splits.
		assert.Equal(t, "abcdefghij", strings.Join(lines, ""))
	})

	t.Run("blank_lines_preserved", func(t *testing.T) {
		lines := WordWrap("para one\n\npara two", 20)
		require.Len(t, lines, 3)
		assert.Equal(t, "", lines[1])
	})

	t.Run("empty_input", func(t *testing.T) {
		assert.Equal(t, []string{""}, WordWrap("", 10))
	})
}
