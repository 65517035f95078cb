package board

import "regexp"

var (
	borderLine = regexp.MustCompile(`^\+-+\+$`)
	fieldLine  = regexp.MustCompile(`^\|[ *]*\|$`)
)

// Validate checks that lines form a bordered board: a `+--+` line on top
// and bottom, `|...|` lines of spaces and mines in between, all of the
// same length. The first violation is reported as a [*ValidationError].
func Validate(lines []string) error {
	if len(lines) < 2 {
		return &ValidationError{Kind: MissingBorder}
	}

	last := len(lines) - 1
	if !borderLine.MatchString(lines[0]) {
		return malformed(0)
	}
	if !borderLine.MatchString(lines[last]) {
		return malformed(last)
	}

	width := len(lines[0])
	if len(lines[last]) != width {
		return &ValidationError{Kind: InconsistentLength}
	}

	for i := 1; i < last; i++ {
		if len(lines[i]) != width || !fieldLine.MatchString(lines[i]) {
			return malformed(i)
		}
	}
	return nil
}
