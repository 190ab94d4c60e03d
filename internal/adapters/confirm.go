package adapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wingetup/internal/ports"
)

// StdinConfirmer asks y/N questions on the terminal. Anything other than
// an explicit yes, including a read error, answers no. One buffered
// reader lives for the confirmer's lifetime so type-ahead across
// consecutive prompts is consumed in order rather than dropped.
type StdinConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewStdinConfirmer() *StdinConfirmer {
	return NewReaderConfirmer(os.Stdin, os.Stdout)
}

func NewReaderConfirmer(in io.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{reader: bufio.NewReader(in), out: out}
}

func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// AutoConfirmer answers yes to everything; it backs the --yes flag for
// unattended runs.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool { return true }

var (
	_ ports.ConfirmerPort = (*StdinConfirmer)(nil)
	_ ports.ConfirmerPort = AutoConfirmer{}
)
