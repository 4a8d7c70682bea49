package nested

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	indicatorTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	indicatorThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// placement is a rendered element positioned in content space.
type placement struct {
	frame   Rect
	content string
}

type segment struct {
	col  int
	text string
}

// compose draws placements into a block of the given size, looking at content
// space from origin. Every element is clipped to its own frame and to the
// block; gaps are filled with spaces so each line is exactly size.Width wide.
func compose(size Size, origin Point, placements []placement) string {
	if size.Width <= 0 || size.Height <= 0 {
		return ""
	}
	rows := make([][]segment, size.Height)
	for _, p := range placements {
		left := max(p.frame.X, origin.X)
		right := min(p.frame.X+p.frame.Width, origin.X+size.Width)
		if right <= left {
			continue
		}
		lines := strings.Split(p.content, "\n")
		for ly := 0; ly < p.frame.Height; ly++ {
			y := p.frame.Y + ly - origin.Y
			if y < 0 || y >= size.Height {
				continue
			}
			var line string
			if ly < len(lines) {
				line = lines[ly]
			}
			text := ansi.Cut(line, left-p.frame.X, right-p.frame.X)
			if w := ansi.StringWidth(text); w < right-left {
				text += strings.Repeat(" ", right-left-w)
			}
			rows[y] = append(rows[y], segment{col: left - origin.X, text: text})
		}
	}

	var b strings.Builder
	for y, segs := range rows {
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].col < segs[j].col })
		col := 0
		for _, s := range segs {
			w := ansi.StringWidth(s.text)
			if s.col < col {
				// overlapping frames: the earlier element wins
				if s.col+w <= col {
					continue
				}
				s.text = ansi.Cut(s.text, col-s.col, w)
				w -= col - s.col
				s.col = col
			}
			b.WriteString(strings.Repeat(" ", s.col-col))
			b.WriteString(s.text)
			col = s.col + w
		}
		if col < size.Width {
			b.WriteString(strings.Repeat(" ", size.Width-col))
		}
		if y < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// thumb returns the start and length of a scroll indicator thumb on a track
// of the given length, or a zero length when everything is visible.
func thumb(track, view, content, offset, minOffset, maxOffset int) (int, int) {
	if track <= 0 || content <= view || maxOffset <= minOffset {
		return 0, 0
	}
	length := max(1, track*view/content)
	pos := (offset - minOffset) * (track - length) / (maxOffset - minOffset)
	return min(max(pos, 0), track-length), length
}

// attachIndicator appends a one-cell scroll indicator to body: a column on the
// right for vertical scrolling, a line at the bottom for horizontal.
func attachIndicator(body string, axis Axis, track, start, length int) string {
	mark := func(i int) string {
		if length > 0 && i >= start && i < start+length {
			if axis == Vertical {
				return indicatorThumbStyle.Render("┃")
			}
			return indicatorThumbStyle.Render("━")
		}
		if axis == Vertical {
			return indicatorTrackStyle.Render("│")
		}
		return indicatorTrackStyle.Render("─")
	}
	if axis == Vertical {
		lines := strings.Split(body, "\n")
		for i := range lines {
			lines[i] += mark(i)
		}
		return strings.Join(lines, "\n")
	}
	var bar strings.Builder
	for i := 0; i < track; i++ {
		bar.WriteString(mark(i))
	}
	if body == "" {
		return bar.String()
	}
	return body + "\n" + bar.String()
}
