package selector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/mxgoldstein/log-current/pkg/models"
)

// Prompt lists the changed files with numbers and reads the operator's choice.
// The entry after the last file is Quit.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt creates a numbered prompt reading whitespace-separated tokens from in
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompt{in: scanner, out: out}
}

// Select blocks until a valid choice or end of input
func (p *Prompt) Select(ctx context.Context, changed *models.Snapshot) (int, error) {
	quit := changed.Len()

	fmt.Fprint(p.out, "Active log files:\n\n")
	for i, name := range changed.Names() {
		fmt.Fprintf(p.out, "%d: %s\n", i, name)
	}
	fmt.Fprintf(p.out, "%d: Quit\n", quit)

	for {
		if err := ctx.Err(); err != nil {
			return None, err
		}

		fmt.Fprintf(p.out, "[0-%d]: ", quit)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return None, fmt.Errorf("failed to read selection: %w", err)
			}
			// EOF
			fmt.Fprintln(p.out)
			return None, nil
		}

		idx, err := ParseSelection(p.in.Text(), quit)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if idx == quit {
			return None, nil
		}
		return idx, nil
	}
}

// ParseSelection parses token as an integer in [0, max]
func ParseSelection(token string, max int) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 || idx > max {
		return None, &InputError{Input: token, Max: max}
	}
	return idx, nil
}
