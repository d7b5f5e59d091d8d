package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads interactive answers from a single buffered reader so that
// consecutive questions share input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question. An empty answer selects def; end of input
// selects no.
func (p *prompter) Confirm(question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "? %s (%s) ", question, hint)

	line, err := p.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		if err != nil {
			fmt.Fprintln(p.out)
			return false
		}
		return def
	}
	return answer == "y" || answer == "yes"
}

// Select asks the user to pick one of options, offering def as the default.
// Unknown answers are re-asked until input runs out, which selects def.
func (p *prompter) Select(question string, options []string, def string) string {
	for {
		fmt.Fprintf(p.out, "? %s (%s) [%s] ", question, strings.Join(options, "/"), def)
		line, err := p.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		if answer == "" {
			if err != nil {
				fmt.Fprintln(p.out)
			}
			return def
		}
		for _, o := range options {
			if strings.EqualFold(o, answer) {
				return o
			}
		}
		fmt.Fprintf(p.out, "  %q is not one of %s\n", answer, strings.Join(options, ", "))
		if err != nil {
			return def
		}
	}
}

// Ask reads a free-form answer, returning def for an empty one.
func (p *prompter) Ask(question, def string) string {
	fmt.Fprintf(p.out, "? %s [%s] ", question, def)
	line, err := p.in.ReadString('\n')
	answer := strings.TrimSpace(line)
	if answer == "" {
		if err != nil {
			fmt.Fprintln(p.out)
		}
		return def
	}
	return answer
}
