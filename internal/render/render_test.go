package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/batch"
	"github.com/vancomm/minefield/internal/input"
)

const stream = "+---+\n| * |\n|   |\n+---+\n\n+-+\n|  |\n+-+\n\n+-+\n|*|\n+-+\n"

func run(t *testing.T, text string) *batch.Job {
	t.Helper()
	jobs, err := batch.Runner{Workers: 1}.Run(
		context.Background(), []batch.Source{batch.StringSource("board.txt", text)},
	)
	require.NoError(t, err)
	return jobs[0]
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"text": Text, "COLOR": Color, "json": JSON} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, m)
	}
	_, err := ParseMode("yaml")
	assert.Error(t, err)
}

func TestPrintText(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, New(Text, &out, &errOut).Print(run(t, stream)))

	assert.Equal(t, "+---+\n|1*1|\n|111|\n+---+\n\n+-+\n|*|\n+-+\n", out.String())
	assert.Equal(t, "board.txt:6: board 1: malformed line 1\n", errOut.String())

	// the text output is itself a valid stream
	boards, err := input.Read(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}

func TestPrintReadError(t *testing.T) {
	jobs, err := batch.Runner{}.Run(
		context.Background(), []batch.Source{batch.FileSource("testdata/missing.txt")},
	)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	require.NoError(t, New(Text, &out, &errOut).Print(jobs[0]))
	assert.Empty(t, out.String())
	assert.True(t, strings.HasPrefix(errOut.String(),
		"testdata/missing.txt: unable to open source: open testdata/missing.txt"), errOut.String())
	assert.NotContains(t, errOut.String(), "unable to open testdata/missing.txt")
}

func TestPrintJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, New(JSON, &out, &errOut).Print(run(t, stream)))
	assert.Empty(t, errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)

	var dtos []boardDTO
	for _, l := range lines {
		var dto boardDTO
		require.NoError(t, json.Unmarshal([]byte(l), &dto))
		dtos = append(dtos, dto)
	}
	assert.Equal(t, []string{"+---+", "|1*1|", "|111|", "+---+"}, dtos[0].Lines)
	assert.Equal(t, "malformed line 1", dtos[1].Error)
	assert.Equal(t, 1, dtos[1].Board)
	assert.Nil(t, dtos[1].Lines)
	assert.Equal(t, 2, dtos[2].Board)
}

func TestColorize(t *testing.T) {
	line := "|1*2 |"
	assert.Equal(t, line, stripped(colorize(line, false)))
	assert.Equal(t, "+----+", stripped(colorize("+----+", true)))
}

// stripped drops ANSI escape sequences.
func stripped(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestPrintColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var out, errOut bytes.Buffer
	require.NoError(t, New(Color, &out, &errOut).Print(run(t, stream)))

	assert.Contains(t, out.String(), "\x1b[")
	assert.Equal(t, "+---+\n|1*1|\n|111|\n+---+\n\n+-+\n|*|\n+-+\n", stripped(out.String()))
}
