// Package prompt implements the interactive QR code menu.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/openclaw/qrgen/vcard"
)

// LineReader reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Generator is the subset of generator.Service the menu drives.
type Generator interface {
	Website(url, explicit string) (string, error)
	Contact(c vcard.Contact, explicit string) (string, error)
}

// Menu asks the user what to generate and hands the answers to a Generator.
type Menu struct {
	in  LineReader
	out io.Writer
	gen Generator
}

// NewMenu creates a Menu reading from in and printing to out.
func NewMenu(in LineReader, out io.Writer, gen Generator) *Menu {
	return &Menu{in: in, out: out, gen: gen}
}

// NewReadline opens a readline instance on the terminal, printing to out.
func NewReadline(out io.Writer) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return rl, nil
}

// errExit signals that the user chose to leave the menu.
var errExit = errors.New("exit")

// Run shows the menu until the user makes a valid choice, generates the
// requested QR code and prints where it was saved. Choosing Exit, or closing
// the input, returns nil without generating anything.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out, "\n=== QR Code Generator ===")
		fmt.Fprintln(m.out, "Choose an option:")
		fmt.Fprintln(m.out, "1. Generate Website QR Code")
		fmt.Fprintln(m.out, "2. Generate Contact QR Code")
		fmt.Fprintln(m.out, "3. Exit")
		fmt.Fprintln(m.out)

		// readline redraws only the prompt's last line, so prompts stay single-line.
		choice, err := m.ask("Enter your choice (1-3): ")
		if err != nil {
			return m.finish(err)
		}

		var path string
		switch choice {
		case "1":
			path, err = m.website()
		case "2":
			path, err = m.contact()
		case "3":
			return m.finish(errExit)
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if err != nil {
			if isExit(err) {
				return m.finish(err)
			}
			return err
		}

		fmt.Fprintf(m.out, "QR code saved to %s\n", path)
		return nil
	}
}

func (m *Menu) website() (string, error) {
	url, err := m.ask("Enter website URL: ")
	if err != nil {
		return "", err
	}
	return m.gen.Website(url, "")
}

func (m *Menu) contact() (string, error) {
	fmt.Fprintln(m.out, "\n--- Enter Your Contact Information ---")

	var c vcard.Contact
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Full Name: ", &c.Name},
		{"Phone Number: ", &c.Phone},
		{"Email Address: ", &c.Email},
		{"Website URL (optional, press Enter to skip): ", &c.Website},
	} {
		v, err := m.ask(f.prompt)
		if err != nil {
			return "", err
		}
		*f.dst = v
	}
	return m.gen.Contact(c, "")
}

func (m *Menu) ask(prompt string) (string, error) {
	m.in.SetPrompt(prompt)
	line, err := m.in.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// finish turns exit requests (menu choice, EOF, Ctrl-C) into a clean return.
func (m *Menu) finish(err error) error {
	if isExit(err) {
		fmt.Fprintln(m.out, "Exiting...")
		return nil
	}
	return err
}

func isExit(err error) bool {
	return errors.Is(err, errExit) || errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
