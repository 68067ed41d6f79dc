// Command dialog-report translates a dialog(1) exit status and result file
// into a human-readable report on stdout. It is a plain text filter with no
// state: status decides the phrasing, the result file supplies the payload.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// dialog(1) exit statuses.
const (
	statusOK       = 0
	statusCancel   = 1
	statusHelp     = 2
	statusExtra    = 3
	statusItemHelp = 4
	statusEscape   = 255
)

var errUnknownStatus = errors.New("unknown dialog status")

// report writes the phrase for status to w, reading the selection payload
// from result where the status carries one.
func report(status int, result io.Reader, w io.Writer) error {
	payload := func() string {
		if result == nil {
			return ""
		}
		data, err := io.ReadAll(result)
		if err != nil {
			return ""
		}
		return strings.TrimRight(string(data), "\n")
	}
	switch status {
	case statusOK:
		fmt.Fprintln(w, payload())
	case statusCancel:
		fmt.Fprintln(w, "Cancel pressed.")
	case statusHelp:
		fmt.Fprintf(w, "Help requested: %s\n", payload())
	case statusExtra:
		fmt.Fprintf(w, "Extra pressed: %s\n", payload())
	case statusItemHelp:
		fmt.Fprintf(w, "Item help requested: %s\n", payload())
	case statusEscape:
		fmt.Fprintln(w, "Aborted.")
	default:
		return fmt.Errorf("%w: %d", errUnknownStatus, status)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: dialog-report status [resultfile]")
		os.Exit(2)
	}
	var status int
	if _, err := fmt.Sscanf(os.Args[1], "%d", &status); err != nil {
		fmt.Fprintf(os.Stderr, "dialog-report: bad status %q\n", os.Args[1])
		os.Exit(2)
	}
	var result io.Reader
	if len(os.Args) > 2 {
		f, err := os.Open(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "dialog-report: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		result = f
	}
	if err := report(status, result, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "dialog-report: %v\n", err)
		os.Exit(1)
	}
}
