package cli

import (
	"os"

	"github.com/mattn/go-isatty"
)

// stdoutIsTTY reports whether stdout is attached to a terminal. Piped
// output gets plain, unstyled text.
func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
