// Package catalog locates the component registry the CLI installs from: the
// per-framework registries bundled into the binary, or an on-disk directory
// with the same layout chosen by flag, environment, or user config.
package catalog
