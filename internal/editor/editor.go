// Package editor opens files in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/nikbrunner/bo/internal/launcher"
)

// DefaultEditor is used when $EDITOR is unset.
const DefaultEditor = "vi"

// Editor runs an editor attached to the terminal and waits for it to exit.
type Editor struct {
	getenv func(string) string
	run    func(*exec.Cmd) error
}

// New returns an Editor using the process environment and terminal.
func New() *Editor {
	return &Editor{
		getenv: os.Getenv,
		run:    (*exec.Cmd).Run,
	}
}

// Open is shorthand for New().Open(path).
func Open(path string) error {
	return New().Open(path)
}

// Command returns the editor command line from $EDITOR, split with shell
// quoting rules: "code -w" becomes two words and a quoted path stays whole.
func (e *Editor) Command() ([]string, error) {
	env := e.getenv("EDITOR")
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("parse EDITOR %q: %w", env, err)
	}
	if len(words) == 0 {
		return []string{DefaultEditor}, nil
	}
	return words, nil
}

// Open edits path and blocks until the editor exits. An unparsable $EDITOR,
// a failure to start the editor and a non-zero exit are all reported as
// *launcher.LaunchError.
func (e *Editor) Open(path string) error {
	argv, err := e.Command()
	if err != nil {
		return &launcher.LaunchError{Target: path, Using: e.getenv("EDITOR"), Err: err}
	}
	argv = append(argv, path)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := e.run(cmd); err != nil {
		return &launcher.LaunchError{Target: path, Using: argv[0], Err: err}
	}
	return nil
}
