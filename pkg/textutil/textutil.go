// Package textutil measures and manipulates strings that may contain ANSI
// styling sequences. All widths are visual terminal cells, never byte or
// rune counts, so padded and truncated text stays aligned regardless of
// embedded escape codes or wide (East Asian) characters.
package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Align selects how Pad distributes spaces around a string.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

const esc = 0x1b

// Strip removes ANSI escape sequences from s: CSI sequences (ESC [ ...
// terminated by a byte in 0x40-0x7e), OSC sequences (ESC ] ... terminated
// by BEL or ESC \) and short two-byte ESC sequences. Every other byte is
// passed through unchanged.
func Strip(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != esc {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			break
		}
		switch s[i+1] {
		case '[':
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
		case ']':
			j := i + 2
			for j < len(s) {
				if s[j] == 0x07 {
					break
				}
				if s[j] == esc && j+1 < len(s) && s[j+1] == '\\' {
					j++
					break
				}
				j++
			}
			i = j
		default:
			i++
		}
	}
	return b.String()
}

// Width returns the visual width of s in terminal cells, ignoring any
// escape sequences it contains.
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Pad grows s to the given visual width with spaces. Strings already at or
// past the target width are returned unchanged.
func Pad(s string, width int, align Align) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

// Truncate shortens s to at most maxLen visual cells. A string that
// already fits is returned unchanged, styling and all. Otherwise the
// stripped text is cut and suffixed with "...", or hard-cut when maxLen
// leaves no room for the ellipsis. Callers are expected to re-apply
// styling after truncation.
func Truncate(s string, maxLen int) string {
	plain := Strip(s)
	if runewidth.StringWidth(plain) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return cut(plain, maxLen)
	}
	return cut(plain, maxLen-3) + "..."
}

// cut returns the longest prefix of s that fits in w cells. s must not
// contain escape sequences.
func cut(s string, w int) string {
	if w <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > w {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// WordWrap greedily packs the words of s onto lines of at most maxWidth
// cells. Words wider than maxWidth are hard-split across lines. Blank
// lines in the input are preserved as paragraph breaks. Escape sequences
// are stripped before wrapping.
func WordWrap(s string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var lines []string
	for _, para := range strings.Split(Strip(s), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur string
		curW := 0
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			if ww > maxWidth {
				if cur != "" {
					lines = append(lines, cur)
					cur, curW = "", 0
				}
				for runewidth.StringWidth(word) > maxWidth {
					head := cut(word, maxWidth)
					if head == "" {
						// single rune wider than the budget
						_, size := utf8.DecodeRuneInString(word)
						head = word[:size]
					}
					lines = append(lines, head)
					word = word[len(head):]
				}
				cur, curW = word, runewidth.StringWidth(word)
				continue
			}
			switch {
			case curW == 0:
				cur, curW = word, ww
			case curW+1+ww <= maxWidth:
				cur += " " + word
				curW += 1 + ww
			default:
				lines = append(lines, cur)
				cur, curW = word, ww
			}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	return lines
}
