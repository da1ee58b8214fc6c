// Package print provides the message helpers used across the installer.
package print

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	isVerbose  = false
	isColoured = false
	infoStyle  = color.New(color.FgBlack).Add(color.BgCyan)
	warnStyle  = color.New(color.FgBlack).Add(color.BgYellow)
	erroStyle  = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls - controlled via the --verbose flag
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

// IsVerbose reports whether verbose mode is active, for callers that render
// their own verbose output.
func IsVerbose() bool {
	return isVerbose
}

// Verb prints a message only when verbose mode is active
func Verb(a ...interface{}) {
	if isVerbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	if isColoured {
		fmt.Print(infoStyle.Sprint("INFO:"), " ", color.WhiteString(fmt.Sprintln(a...)))
	} else {
		fmt.Print("INFO: ", fmt.Sprintln(a...))
	}
}

// Warn is for advisories that do not prevent the install from finishing
func Warn(a ...interface{}) {
	if isColoured {
		fmt.Print(warnStyle.Sprint("WARN:"), " ", color.YellowString(fmt.Sprintln(a...)))
	} else {
		fmt.Print("WARN: ", fmt.Sprintln(a...))
	}
}

// Erro is for terminal errors, printed just before a non-zero exit
func Erro(a ...interface{}) {
	if isColoured {
		fmt.Print(erroStyle.Sprint("ERROR:"), " ", color.RedString(fmt.Sprintln(a...)))
	} else {
		fmt.Print("ERROR: ", fmt.Sprintln(a...))
	}
}
