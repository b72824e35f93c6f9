package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/passgen/passgen-go/internal/generator"
)

var errUnknownCommand = errors.New("unknown command, type help")

const sessionHelp = `Commands:
  length N                       set the password length
  uppercase on|off               toggle random uppercasing
  numbers|letters|special SPEC   true, false or the characters to use
  generate (or empty line)       new password with the same options
  copy                           copy the current password
  show                           print the current options
  help                           this text
  quit                           leave`

// Session is an interactive generator. It keeps the user's option edits and
// regenerates the password after every change.
type Session struct {
	defaults  generator.Options
	overrides generator.Overrides
	maxLength int
	src       generator.Source
	clip      Clipboard
	out       io.Writer

	password string
}

// NewSession starts a session from the given overrides. Lengths above
// maxLength are refused when maxLength is positive.
func NewSession(defaults generator.Options, overrides generator.Overrides, maxLength int, src generator.Source, clip Clipboard, out io.Writer) *Session {
	return &Session{
		defaults:  defaults,
		overrides: overrides,
		maxLength: maxLength,
		src:       src,
		clip:      clip,
		out:       out,
	}
}

// Password returns the last successfully generated password.
func (s *Session) Password() string { return s.password }

// Run reads commands from r until EOF or quit.
func (s *Session) Run(r io.Reader) error {
	fmt.Fprintln(s.out, "=== Password Generator (interactive mode) ===")
	if err := s.regenerate(); err != nil {
		s.printError(err)
	}

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		quit, err := s.Exec(scanner.Text())
		if err != nil {
			s.printError(err)
		}
		if quit {
			return nil
		}
	}
}

// Exec applies one command line. It reports whether the session should end.
func (s *Session) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, s.regenerate()
	}

	cmd, arg := strings.ToLower(fields[0]), strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(s.out, sessionHelp)
		return false, nil
	case "generate", "gen", "g":
		return false, s.regenerate()
	case "copy", "c":
		if s.password == "" {
			return false, errors.New("nothing to copy")
		}
		copyPassword(s.clip, s.password, s.out)
		return false, nil
	case "show":
		s.show()
		return false, nil
	case "length", "l":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return false, fmt.Errorf("invalid length %q", arg)
		}
		s.overrides.Length = &n
	case "uppercase", "u":
		b, err := parseSwitch(arg)
		if err != nil {
			return false, err
		}
		s.overrides.Uppercase = &b
	case "numbers", "letters", "special":
		if arg == "" {
			return false, fmt.Errorf("%s needs true, false or characters", cmd)
		}
		s.overrides.SetClass(classByName(cmd), generator.ParseClassSpec(arg))
	default:
		return false, errUnknownCommand
	}

	return false, s.regenerate()
}

func (s *Session) regenerate() error {
	cfg, err := resolve(s.defaults, s.overrides, s.maxLength)
	if err != nil {
		return err
	}
	pw, err := generator.Sample(cfg, s.src)
	if err != nil {
		return err
	}
	s.password = pw
	color.New(color.FgCyan, color.Bold).Fprintln(s.out, pw)
	return nil
}

func (s *Session) printError(err error) {
	color.New(color.FgRed).Fprintln(s.out, "error:", err)
}

func (s *Session) show() {
	r := generator.Resolve(s.defaults, s.overrides)
	for _, c := range generator.Classes {
		chars := string(r.Chars(c))
		if chars == "" {
			chars = "off"
		}
		fmt.Fprintf(s.out, "%-18s %s\n", c.String()+":", chars)
	}
	fmt.Fprintf(s.out, "%-18s %t\n", "uppercase:", r.Uppercase)
	fmt.Fprintf(s.out, "%-18s %d\n", "length:", r.Length)
}

func classByName(name string) generator.Class {
	switch name {
	case "numbers":
		return generator.Numbers
	case "letters":
		return generator.Letters
	}
	return generator.SpecialCharacters
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "y":
		return true, nil
	case "off", "false", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
