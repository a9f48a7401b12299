// Package report prints results and errors to the terminal.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
	"github.com/ayoisaiah/focuswatch/internal/session"
)

// Outcome prints the final result of a session once the UI has exited.
func Outcome(o session.Outcome) {
	if o.Success {
		pterm.Success.Println(o.Message())
		return
	}

	pterm.Error.Println(o.Message())
}

// Quit prints err and exits the process.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
