// Package console implements the interactive menu interface of the student
// portal: a prompter over an injected reader and the two-level navigation
// state machine. Nothing here touches process-global state, so the whole
// interface is drivable from tests with a scripted reader.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads menu input line by line. Malformed and out-of-range values
// are handled locally with a re-prompt; callers only ever see an in-range
// value or io.EOF when the input is exhausted.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadBoundedInt reads an integer in [min, max]. Non-numeric input and values
// outside the bounds trigger a re-prompt, never an error and never a value
// outside the bounds. Returns io.EOF when the input ends.
func (p *Prompter) ReadBoundedInt(min, max int) (int, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprint(p.out, "\nInvalid input. Please enter a number: ")
			continue
		}

		if value < min || value > max {
			fmt.Fprintf(p.out, "\nPlease enter a number between %d and %d: ", min, max)
			continue
		}

		return value, nil
	}
}

// ReadContinue blocks until the next line ("Press Enter to continue").
func (p *Prompter) ReadContinue() error {
	fmt.Fprint(p.out, "\nPress Enter to continue...")
	_, err := p.readLine()
	return err
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}
