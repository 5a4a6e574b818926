package configure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter reads answers from stdin. On an interactive terminal
// the API key is read with echo disabled; piped stdin reads plain lines
// so keys can be scripted (echo $KEY | wezza configure weatherapi).
type TerminalPrompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	fd          int
}

func NewTerminalPrompter() *TerminalPrompter {
	interactive := false
	if fi, err := os.Stdin.Stat(); err == nil {
		interactive = (fi.Mode() & os.ModeCharDevice) != 0
	}

	return &TerminalPrompter{
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: interactive,
		fd:          int(os.Stdin.Fd()),
	}
}

func (p *TerminalPrompter) PromptAPIKey(provider string) (string, error) {
	fmt.Fprintf(p.out, "Enter API key for %s: ", provider)

	if p.interactive {
		keyBytes, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out) // newline after hidden input
		if err != nil {
			return "", fmt.Errorf("reading API key: %w", err)
		}
		return string(keyBytes), nil
	}

	return p.readLine()
}

func (p *TerminalPrompter) ConfirmOverwrite(provider string) (bool, error) {
	return p.confirm(fmt.Sprintf("A credential for %s already exists. Overwrite?", provider))
}

func (p *TerminalPrompter) ConfirmDefault(provider string) (bool, error) {
	return p.confirm(fmt.Sprintf("Make %s the default provider?", provider))
}

// confirm asks a yes/no question; plain Enter means yes.
func (p *TerminalPrompter) confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [Y/n]: ", question)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	return strings.TrimSpace(line), nil
}
