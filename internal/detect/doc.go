// Package detect inspects a consuming project on disk: which frontend
// framework it uses, which package manager owns it, and whether the Galaxy
// UI utility packages are already installed.
package detect
