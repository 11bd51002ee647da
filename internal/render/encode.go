package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalf = "▀"

func (r *Renderer) style(fg, bg string) lipgloss.Style {
	k := [2]string{fg, bg}
	s, ok := r.styles[k]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		r.styles[k] = s
	}
	return s
}

// encodeSolid turns the colour buffer into rows of half blocks, merging runs
// of identical cells into one styled span.
func (r *Renderer) encodeSolid() string {
	rows := (r.height + 1) / 2
	out := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		var run int
		var cur [2]string
		flush := func() {
			if run > 0 {
				sb.WriteString(r.style(cur[0], cur[1]).Render(strings.Repeat(upperHalf, run)))
			}
		}
		top := 2 * row * r.width
		bottom := top + r.width
		for x := 0; x < r.width; x++ {
			k := [2]string{r.color[top+x].Hex(), ""}
			if 2*row+1 < r.height {
				k[1] = r.color[bottom+x].Hex()
			}
			if k != cur {
				flush()
				cur, run = k, 0
			}
			run++
		}
		flush()
		out[row] = sb.String()
	}
	return strings.Join(out, "\n")
}
