package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal (pipes, redirects).
const fallbackWidth = 80

// terminalWidth reports the stdout terminal width in columns.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// printColumns lays passwords out in columns sized to width, filling top to
// bottom and then left to right like classic pwgen output.
func printColumns(w io.Writer, passwords []string, width int) {
	if len(passwords) == 0 {
		return
	}

	maxLen := 0
	for _, pw := range passwords {
		if len(pw) > maxLen {
			maxLen = len(pw)
		}
	}

	cols := (width + 1) / (maxLen + 1)
	if cols < 1 {
		cols = 1
	}
	rows := (len(passwords) + cols - 1) / cols

	var line strings.Builder
	for row := 0; row < rows; row++ {
		line.Reset()
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(passwords) {
				break
			}
			if col > 0 {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, "%-*s", maxLen, passwords[i])
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
