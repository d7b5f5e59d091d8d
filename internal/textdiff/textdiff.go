package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies a diff line.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines computes a line-level diff from oldText to newText.
func Lines(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: text})
		}
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Write prints a unified-style diff of oldText and newText to w, keeping
// context unchanged lines around each change. It prints nothing and returns
// false when the texts are identical.
func Write(w io.Writer, oldName, newName, oldText, newText string, context int) bool {
	lines := Lines(oldText, newText)
	if !Changed(lines) {
		return false
	}

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		lo, hi := max(0, i-context), min(len(lines)-1, i+context)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	fmt.Fprintf(w, "--- %s\n+++ %s\n", oldName, newName)
	skipping := false
	for i, l := range lines {
		if !keep[i] {
			if !skipping {
				fmt.Fprintln(w, "@@")
				skipping = true
			}
			continue
		}
		skipping = false
		switch l.Op {
		case Delete:
			fmt.Fprintf(w, "-%s\n", l.Text)
		case Insert:
			fmt.Fprintf(w, "+%s\n", l.Text)
		default:
			fmt.Fprintf(w, " %s\n", l.Text)
		}
	}
	return true
}
