package board

import (
	"fmt"
	"strings"
)

// Format renders a counted grid back into bordered lines. It panics with
// an [AssertionError] if the grid still holds an [Empty] cell.
func Format(g Grid) []string {
	border := "+" + strings.Repeat("-", g.cols) + "+"

	lines := make([]string, 0, g.rows+2)
	lines = append(lines, border)

	buf := make([]byte, g.cols+2)
	buf[0], buf[g.cols+1] = '|', '|'
	for y := range g.rows {
		for x := range g.cols {
			c := g.cells[y*g.cols+x]
			if !c.IsMine() && !c.IsCounted() {
				panic(AssertionError{fmt.Sprintf("uncounted cell %d:%d (%s)", y, x, c)})
			}
			buf[x+1] = c.Glyph()
		}
		lines = append(lines, string(buf))
	}

	return append(lines, border)
}
