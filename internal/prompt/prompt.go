// Package prompt acquires a begin word and an end word of equal length,
// either through an interactive form on a terminal or by reading
// whitespace-delimited tokens from a stream.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/katalvlaran/wordchain/core"
)

// ErrNoInput is returned when the input ends before a valid pair was read.
var ErrNoInput = errors.New("prompt: no input")

// Prompter asks for word pairs until their lengths match.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	logger      *slog.Logger
	scanner     *bufio.Scanner
	interactive bool
}

// New returns a Prompter reading from in and writing prompts to out.
// When interactive is true a huh form is shown instead of plain prompts.
func New(in io.Reader, out io.Writer, logger *slog.Logger, interactive bool) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Prompter{in: in, out: out, logger: logger, scanner: sc, interactive: interactive}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Words returns a lowercased begin and end word of equal rune length.
func (p *Prompter) Words(ctx context.Context) (begin, end string, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}

		if p.interactive {
			begin, end, err = p.ask(ctx)
		} else {
			begin, end, err = p.scan()
		}
		if err != nil {
			return "", "", err
		}

		if core.WordLen(begin) == core.WordLen(end) {
			return begin, end, nil
		}
		p.logger.Error("Words have different length!", "begin", begin, "end", end)
	}
}

// scan reads the next two tokens.
func (p *Prompter) scan() (string, string, error) {
	fmt.Fprint(p.out, "Please enter the begin word: ")
	begin, err := p.next()
	if err != nil {
		return "", "", err
	}
	fmt.Fprint(p.out, "Please enter the end word: ")
	end, err := p.next()
	if err != nil {
		return "", "", err
	}

	return begin, end, nil
}

func (p *Prompter) next() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("prompt: %w", err)
		}
		return "", ErrNoInput
	}

	return strings.ToLower(p.scanner.Text()), nil
}

// ask shows a two-field form; the end field rejects a word whose length
// differs from the begin word.
func (p *Prompter) ask(ctx context.Context) (string, string, error) {
	var begin, end string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Please enter the begin word").Value(&begin).Validate(notBlank),
			huh.NewInput().Title("Please enter the end word").Value(&end).Validate(sameLengthAs(&begin)),
		),
	).WithInput(p.in).WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", ErrNoInput
		}
		return "", "", fmt.Errorf("prompt: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(begin)), strings.ToLower(strings.TrimSpace(end)), nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a word is required")
	}
	return nil
}

// sameLengthAs validates a non-blank word against the current value of *begin.
func sameLengthAs(begin *string) func(string) error {
	return func(s string) error {
		if err := notBlank(s); err != nil {
			return err
		}
		if core.WordLen(strings.TrimSpace(s)) != core.WordLen(strings.TrimSpace(*begin)) {
			return errors.New("words have different length")
		}
		return nil
	}
}
