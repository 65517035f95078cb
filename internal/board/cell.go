package board

import "strconv"

type Cell int8

const (
	Empty Cell = -2 // awaiting a count
	Mine  Cell = -1
	// 0-8 for a free cell with given number of mined neighbours
)

const MaxCount = 8

// Counted returns the cell annotated with n adjacent mines.
func Counted(n int) Cell {
	if n < 0 || n > MaxCount {
		panic(AssertionError{"count out of range: " + strconv.Itoa(n)})
	}
	return Cell(n)
}

func (c Cell) IsMine() bool {
	return c == Mine
}

func (c Cell) IsCounted() bool {
	return 0 <= c && c <= MaxCount
}

// Glyph is the character the cell is drawn with inside a bordered board.
func (c Cell) Glyph() byte {
	switch {
	case c == Mine:
		return '*'
	case c == 0, c == Empty:
		return ' '
	case c.IsCounted():
		return '0' + byte(c)
	default:
		return '!'
	}
}

func (c Cell) String() string {
	switch c {
	case Mine:
		return "*"
	case Empty:
		return "."
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}
