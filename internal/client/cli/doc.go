// Package cli implements the interactive FitLife shell: a read-eval-print
// loop whose available commands depend on the session state and the active
// screen. It is the terminal counterpart of the web dashboard's application
// shell.
package cli
