// Package textdiff renders line-oriented differences between two versions of
// a text file, used to preview config rewrites and local component edits.
package textdiff
