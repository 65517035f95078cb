// Package render writes batch results for humans or machines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/vancomm/minefield/internal/batch"
)

type Mode string

const (
	Text  Mode = "text"
	Color Mode = "color"
	JSON  Mode = "json"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case Text, Color, JSON:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want text, color or json)", s)
	}
}

var (
	mine   = color.New(color.FgRed, color.Bold)
	border = color.New(color.Faint)
	digits = [9]*color.Color{
		nil,
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgRed),
		color.New(color.FgMagenta),
		color.New(color.FgYellow),
		color.New(color.FgCyan),
		color.New(color.FgHiWhite),
		color.New(color.FgHiBlack),
	}
)

type Printer struct {
	mode    Mode
	out     io.Writer
	errOut  io.Writer
	enc     *json.Encoder
	printed int
}

func New(mode Mode, out, errOut io.Writer) *Printer {
	p := &Printer{mode: mode, out: out, errOut: errOut}
	if mode == JSON {
		p.enc = json.NewEncoder(out)
	}
	if mode == Color && os.Getenv("NO_COLOR") == "" {
		mine.EnableColor()
		border.EnableColor()
		for _, c := range digits[1:] {
			c.EnableColor()
		}
	}
	return p
}

type boardDTO struct {
	Source string   `json:"source"`
	Board  int      `json:"board"`
	Line   int      `json:"line,omitempty"`
	Lines  []string `json:"lines,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// Print writes every result of job. Boards are separated by an empty line
// in the text modes, so text output can be fed back in.
func (p *Printer) Print(job *batch.Job) error {
	if job.Err != nil {
		return p.failure(boardDTO{Source: job.Source.Name, Error: job.Err.Error()})
	}
	for _, r := range job.Results {
		if r.Err != nil {
			err := p.failure(boardDTO{
				Source: job.Source.Name,
				Board:  r.Board.Index,
				Line:   r.Board.Line,
				Error:  r.Err.Error(),
			})
			if err != nil {
				return err
			}
			continue
		}
		if err := p.board(job.Source.Name, r); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) failure(dto boardDTO) error {
	if p.mode == JSON {
		return p.enc.Encode(dto)
	}
	var err error
	if dto.Line > 0 {
		_, err = fmt.Fprintf(p.errOut, "%s:%d: board %d: %s\n", dto.Source, dto.Line, dto.Board, dto.Error)
	} else {
		_, err = fmt.Fprintf(p.errOut, "%s: %s\n", dto.Source, dto.Error)
	}
	return err
}

func (p *Printer) board(source string, r batch.Result) error {
	if p.mode == JSON {
		return p.enc.Encode(boardDTO{
			Source: source,
			Board:  r.Board.Index,
			Line:   r.Board.Line,
			Lines:  r.Lines,
		})
	}

	var b strings.Builder
	if p.printed > 0 {
		b.WriteByte('\n')
	}
	for i, line := range r.Lines {
		if p.mode == Color {
			line = colorize(line, i == 0 || i == len(r.Lines)-1)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	p.printed++
	_, err := io.WriteString(p.out, b.String())
	return err
}

func colorize(line string, isBorder bool) string {
	if isBorder || len(line) < 2 {
		return border.Sprint(line)
	}
	var b strings.Builder
	b.WriteString(border.Sprint(line[:1]))
	for _, ch := range []byte(line[1 : len(line)-1]) {
		switch {
		case ch == '*':
			b.WriteString(mine.Sprint("*"))
		case '1' <= ch && ch <= '8':
			b.WriteString(digits[ch-'0'].Sprint(string(ch)))
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteString(border.Sprint(line[len(line)-1:]))
	return b.String()
}
