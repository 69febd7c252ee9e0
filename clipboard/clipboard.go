// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/pbirview"
)

// ErrUnavailable is returned by Detect when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found")

// Ensure Command implements the Clipboard interface.
var _ pbirview.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content to an external command.
type Command struct {
	Name string
	Args []string
}

// NewPBCopy returns a clipboard backed by macOS pbcopy.
func NewPBCopy() *Command {
	return &Command{Name: "pbcopy"}
}

// NewWLCopy returns a clipboard backed by Wayland's wl-copy.
func NewWLCopy() *Command {
	return &Command{Name: "wl-copy"}
}

// NewXclip returns a clipboard backed by xclip.
func NewXclip() *Command {
	return &Command{Name: "xclip", Args: []string{"-selection", "clipboard"}}
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}

// Detect returns the first clipboard whose command is on PATH.
func Detect() (*Command, error) {
	return detect(exec.LookPath)
}

func detect(lookPath func(string) (string, error)) (*Command, error) {
	for _, c := range []*Command{NewPBCopy(), NewWLCopy(), NewXclip()} {
		if _, err := lookPath(c.Name); err == nil {
			return c, nil
		}
	}
	return nil, ErrUnavailable
}
