package board

// Parse strips the borders off validated lines and returns a grid of
// [Mine] and [Empty] cells. Unvalidated input is not checked again.
func Parse(lines []string) Grid {
	g := newGrid(len(lines)-2, len(lines[0])-2)
	for y, line := range lines[1 : len(lines)-1] {
		for x := range g.cols {
			if line[x+1] == '*' {
				g.cells[y*g.cols+x] = Mine
			} else {
				g.cells[y*g.cols+x] = Empty
			}
		}
	}
	return g
}
