package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/picker"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// Prompter asks the user for input.
type Prompter interface {
	// Input reads a line. An empty answer returns initial.
	Input(prompt, initial string) (string, error)

	// Secret reads a line without echo.
	Secret(prompt string) (string, error)

	// Confirm asks a yes/no question. The default is no.
	Confirm(prompt string) (bool, error)

	// Select returns the index of the chosen item.
	Select(ctx context.Context, title string, items []picker.Item, start int) (int, error)
}

// prompter is swapped in tests.
var prompter Prompter = newTerminalPrompter(os.Stdin, os.Stderr)

type terminalPrompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

func newTerminalPrompter(in *os.File, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: in, reader: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) Input(prompt, initial string) (string, error) {
	if initial != "" {
		fmt.Fprintf(p.out, "%s %s [%s]: ", ui.styles.Title.Render("?"), prompt, initial)
	} else {
		fmt.Fprintf(p.out, "%s %s: ", ui.styles.Title.Render("?"), prompt)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return initial, nil
	}
	return answer, nil
}

func (p *terminalPrompter) Secret(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s %s: ", ui.styles.Title.Render("?"), prompt)
	fd := int(p.in.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return p.readLine()
}

func (p *terminalPrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s %s [y/N]: ", ui.styles.Title.Render("?"), prompt)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *terminalPrompter) Select(ctx context.Context, title string, items []picker.Item, start int) (int, error) {
	if !term.IsTerminal(int(p.in.Fd())) {
		return -1, fmt.Errorf("%w: %s needs an interactive terminal, pass the value as an argument",
			domain.ErrInvalidInput, strings.ToLower(title))
	}
	return picker.Run(ctx, title, items,
		picker.WithInput(p.in),
		picker.WithOutput(p.out),
		picker.WithStyles(ui.styles),
		picker.WithStart(start),
	)
}

// confirmOrCancel returns domain.ErrCanceled unless the user agrees.
func confirmOrCancel(prompt, what string) error {
	ok, err := prompter.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", what, domain.ErrCanceled)
	}
	return nil
}

// askRequired reads a non-empty value.
func askRequired(prompt string, secret bool) (string, error) {
	var (
		value string
		err   error
	)
	if secret {
		value, err = prompter.Secret(prompt)
	} else {
		value, err = prompter.Input(prompt, "")
	}
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, strings.ToLower(prompt))
	}
	return value, nil
}
