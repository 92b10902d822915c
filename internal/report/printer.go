package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	// NoResults is printed instead of a table when a query returns no rows.
	NoResults = "(no results found)"
	// NoRecords is the table-dump variant of NoResults.
	NoRecords = "(no records found)"

	indent    = "  "
	delimiter = " | "
)

// Table is a fetched result set rendered as text.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Layout selects how rows are printed.
type Layout int

const (
	// Columns prints one delimited line per row under an optional header.
	Columns Layout = iota
	// Records prints each row as a parenthesized tuple.
	Records
	// Labeled prints one "Label: value" line per column and a blank line per row.
	Labeled
)

// Printer renders tables to an io.Writer.
type Printer struct {
	Layout Layout
	Empty  string
}

// NewPrinter returns a Columns printer using the NoResults message.
func NewPrinter() Printer {
	return Printer{Layout: Columns, Empty: NoResults}
}

// Print writes t to w. Rows and columns keep the order they have in t.
func (p Printer) Print(w io.Writer, t Table) error {
	if len(t.Rows) == 0 {
		empty := p.Empty
		if empty == "" {
			empty = NoResults
		}
		_, err := fmt.Fprintf(w, "%s%s\n", indent, empty)
		return err
	}

	switch p.Layout {
	case Records:
		return printRecords(w, t)
	case Labeled:
		return printLabeled(w, t)
	default:
		return printColumns(w, t)
	}
}

func printColumns(w io.Writer, t Table) error {
	if len(t.Headers) > 0 {
		header := strings.Join(t.Headers, delimiter)
		if _, err := fmt.Fprintf(w, "%s%s\n%s%s\n", indent, header, indent, strings.Repeat("-", len(header))); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, strings.Join(row, delimiter)); err != nil {
			return err
		}
	}
	return nil
}

func printRecords(w io.Writer, t Table) error {
	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "%s(%s)\n", indent, strings.Join(row, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printLabeled(w io.Writer, t Table) error {
	for _, row := range t.Rows {
		for i, v := range row {
			label := fmt.Sprintf("Column %d", i+1)
			if i < len(t.Headers) {
				label = t.Headers[i]
			}
			if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, label, v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Title prints a section heading the way the report scripts do.
func Title(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n%s-- %s --\n", indent, title)
	return err
}
