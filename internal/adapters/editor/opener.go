package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Opener opens page sources in the user's editor
type Opener struct {
	lookup func(string) string
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// Command returns an exec.Cmd opening path at line, for bubbletea's ExecProcess
func (o *Opener) Command(path string, line int) (*exec.Cmd, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, Args(editor, path, line)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// Args builds the arguments that jump to line for editors known to support it
func Args(editor, path string, line int) []string {
	if line <= 1 {
		return []string{path}
	}
	switch filepath.Base(editor) {
	case "vi", "vim", "nvim", "nano", "emacs", "hx", "kak", "micro":
		return []string{"+" + strconv.Itoa(line), path}
	case "code", "codium", "cursor":
		return []string{"--goto", path + ":" + strconv.Itoa(line)}
	default:
		return []string{path}
	}
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if editor := o.lookup("EDITOR"); editor != "" {
		return editor
	}
	if visual := o.lookup("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano", "code"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
