// Package tablewriter formats rows into an ASCII table for console output.
package tablewriter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Writer accumulates headers and rows and renders them as an ASCII table.
type Writer struct {
	out     io.Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewWriter creates a new table writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// SetHeader sets the table headers.
func (t *Writer) SetHeader(headers []string) {
	t.headers = headers
	t.updateWidths(headers)
}

// Append adds a new row to the table.
func (t *Writer) Append(row []string) {
	t.rows = append(t.rows, row)
	t.updateWidths(row)
}

// displayWidth returns the rendered width of a cell, ignoring ANSI color
// codes and accounting for wide characters.
func displayWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

func (t *Writer) updateWidths(row []string) {
	for i, cell := range row {
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if width := displayWidth(cell); width > t.widths[i] {
			t.widths[i] = width
		}
	}
}

// Render outputs the table to the writer.
func (t *Writer) Render() {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return
	}
	t.printBorder()
	if len(t.headers) > 0 {
		t.printRow(t.headers)
		t.printBorder()
	}
	for _, row := range t.rows {
		t.printRow(row)
	}
	t.printBorder()
}

func (t *Writer) printBorder() {
	fmt.Fprint(t.out, "+")
	for _, width := range t.widths {
		fmt.Fprint(t.out, strings.Repeat("-", width+2))
		fmt.Fprint(t.out, "+")
	}
	fmt.Fprintln(t.out)
}

func (t *Writer) printRow(row []string) {
	fmt.Fprint(t.out, "|")
	for i := range t.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		padding := t.widths[i] - displayWidth(cell)
		fmt.Fprintf(t.out, " %s%s |", cell, strings.Repeat(" ", padding))
	}
	fmt.Fprintln(t.out)
}
