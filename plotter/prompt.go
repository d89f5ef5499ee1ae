package plotter

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Prompt asks the operator to press Enter before each pause ends.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt reads answers from in and writes questions to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Pause prints reason and waits for a line on the input. io.EOF on the
// input ends the pause like an empty line.
// The read itself is not interruptible; ctx is checked before and after.
func (p *Prompt) Pause(ctx context.Context, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.out, "%s. Press Enter to continue...", reason); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	if _, err := p.in.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("prompt: %w", err)
	}

	return ctx.Err()
}
