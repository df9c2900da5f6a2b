package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

var out io.Writer = os.Stdout

// SetOutput redirects status output. Passing io.Discard silences it.
func SetOutput(w io.Writer) {
	out = w
}

// DisableColor strips the ANSI escapes, for logs and pipes.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow = "", "", "", ""
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(out, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(label, detail string) {
	fmt.Fprintf(out, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(out, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}
