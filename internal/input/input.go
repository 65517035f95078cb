// Package input turns text streams into raw boards. A stream holds one or
// more boards separated by empty lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const MaxLineLength = 16 << 20

type Board struct {
	Index int      // position of the board within its stream
	Line  int      // 1-based line number of the board's first line
	Lines []string // raw, unvalidated
}

type splitter struct {
	boards  []Board
	current *Board
	lineNo  int
}

func (s *splitter) push(line string) {
	s.lineNo++
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		s.flush()
		return
	}
	if s.current == nil {
		s.current = &Board{Index: len(s.boards), Line: s.lineNo}
	}
	s.current.Lines = append(s.current.Lines, line)
}

func (s *splitter) flush() {
	if s.current != nil {
		s.boards = append(s.boards, *s.current)
		s.current = nil
	}
}

// Read consumes r and returns every board found in it.
func Read(r io.Reader) ([]Board, error) {
	var s splitter
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	for scanner.Scan() {
		s.push(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read line %d: %w", s.lineNo+1, err)
	}
	s.flush()
	return s.boards, nil
}
