// Package project manages a consuming project's components.json: creating
// framework-specific defaults, validating and loading it, persisting it with a
// stable layout, and mapping its path aliases to directories on disk.
package project
