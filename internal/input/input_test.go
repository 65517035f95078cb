package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoBoards = "+-+\n|*|\n+-+\n\n\n+--+\r\n|  |\r\n+--+\n"

func TestRead(t *testing.T) {
	boards, err := Read(strings.NewReader(twoBoards))
	require.NoError(t, err)
	require.Len(t, boards, 2)

	assert.Equal(t, Board{Index: 0, Line: 1, Lines: []string{"+-+", "|*|", "+-+"}}, boards[0])
	assert.Equal(t, Board{Index: 1, Line: 6, Lines: []string{"+--+", "|  |", "+--+"}}, boards[1])
}

func TestReadEdges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines [][]string
		first []int
	}{
		{name: "empty", input: ""},
		{name: "only newline", input: "\n"},
		{name: "no trailing newline", input: "+-+\n| |\n+-+",
			lines: [][]string{{"+-+", "| |", "+-+"}}, first: []int{1}},
		{name: "leading and trailing blanks", input: "\n\n+-+\n| |\n+-+\n\n",
			lines: [][]string{{"+-+", "| |", "+-+"}}, first: []int{3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			boards, err := Read(strings.NewReader(test.input))
			require.NoError(t, err)
			require.Len(t, boards, len(test.lines))
			for i, b := range boards {
				assert.Equal(t, i, b.Index)
				assert.Equal(t, test.first[i], b.Line)
				assert.Equal(t, test.lines[i], b.Lines)
			}
		})
	}
}

func TestWhitespaceLinesStayInBoard(t *testing.T) {
	boards, err := Read(strings.NewReader("+-+\n   \n+-+"))
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, []string{"+-+", "   ", "+-+"}, boards[0].Lines)
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}
