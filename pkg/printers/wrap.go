package printers

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// Wrap splits text into lines no wider than width display cells. Words are
// packed greedily; a word wider than width is cut into width-sized chunks.
// Blank text yields no lines.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var (
		lines []string
		cur   string
		curW  int
	)
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
		}
		cur, curW = "", 0
	}

	for _, word := range words {
		w := ansi.PrintableRuneWidth(word)
		if w > width {
			flush()
			chunks := chunk(word, width)
			lines = append(lines, chunks[:len(chunks)-1]...)
			cur = chunks[len(chunks)-1]
			curW = ansi.PrintableRuneWidth(cur)
			continue
		}
		if cur == "" {
			cur, curW = word, w
			continue
		}
		if curW+1+w <= width {
			cur += " " + word
			curW += 1 + w
			continue
		}
		flush()
		cur, curW = word, w
	}
	flush()
	return lines
}

// chunk hard-breaks s into pieces of at most width display cells.
func chunk(s string, width int) []string {
	var (
		out []string
		b   strings.Builder
		w   int
	)
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}
