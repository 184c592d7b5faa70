package textedit

import "fmt"

// numberWidth is the field width the line number is right aligned in.
const numberWidth = 6

// Counter is the next line number to hand out.
type Counter struct {
	n int
}

// NewCounter returns a Counter starting at 1.
func NewCounter() Counter {
	return Counter{n: 1}
}

// Value returns the number the next prefixed line would get.
func (c *Counter) Value() int { return c.n }

// Numbering controls which lines [Numbering.Prefix] writes a number on.
// NonBlank wins over All for blank lines.
type Numbering struct {
	All      bool
	NonBlank bool
}

// Prefix prepends the counter and a tab to line when numbering applies to it.
//
// Blank lines in NonBlank mode are returned as is and do not consume a number.
// Every other call advances c, even when neither mode is enabled, so the
// counter always reflects the number of lines that could have been numbered.
func (n Numbering) Prefix(c *Counter, line string) string {
	if n.NonBlank && line == "" {
		return line
	}
	if n.All || n.NonBlank {
		line = fmt.Sprintf("%*d\t%s", numberWidth, c.n, line)
	}
	c.n++
	return line
}

