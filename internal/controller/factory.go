package controller

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.OutOrStdout())
}

// IsTTY reports whether w is an interactive terminal. Redirected output,
// pipes and character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
