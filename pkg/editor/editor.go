// Package editor launches the configured editor with the window splits that
// realize a computed pane layout. The split recipe targets vim-compatible
// editors (vim, nvim, gvim): panes open left to right, columns split top to
// bottom, then focus walks from the top-left window to its final pane.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/layout"
	"github.com/arthur-debert/relfiles/pkg/logging"
)

// DefaultCommand is used when neither configuration nor $EDITOR name one.
const DefaultCommand = "vim"

// Command builds the editor invocation for a layout. The first pane's file
// is the initial buffer; every further pane is opened with a split command:
//
//	belowright split        next pane in the current column
//	botright vertical split first pane of the right column
//
// then `wincmd t` plus the layout's focus moves place the cursor.
func Command(editorCmd string, l *layout.Layout) *exec.Cmd {
	if editorCmd == "" {
		editorCmd = DefaultCommand
	}
	parts := strings.Fields(editorCmd)
	name := parts[0]
	args := append([]string{}, parts[1:]...)

	for c, column := range l.Columns {
		for r, pane := range column {
			switch {
			case c == 0 && r == 0:
				args = append(args, pane.Path)
			case r == 0:
				args = append(args, "-c", "botright vertical split "+escapePath(pane.Path))
			default:
				args = append(args, "-c", "belowright split "+escapePath(pane.Path))
			}
		}
	}

	args = append(args, "-c", "wincmd t")
	for _, move := range l.FocusMoves() {
		args = append(args, "-c", "wincmd "+move)
	}

	return exec.Command(name, args...)
}

// Open runs the editor attached to the current terminal and waits for it.
func Open(cmd *exec.Cmd) error {
	logger := logging.GetLogger("editor")
	logger.Debug().Str("path", cmd.Path).Strs("args", cmd.Args).Msg("launching editor")

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrEditorLaunch, "editor %s failed", cmd.Path)
	}
	return nil
}

// escapePath escapes the characters that are special to ex commands.
func escapePath(p string) string {
	var b strings.Builder
	for _, r := range p {
		switch r {
		case ' ', '\\', '%', '#', '|', '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
