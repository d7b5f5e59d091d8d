// Package registry loads per-framework component registries, resolves requested
// component and group names into an install set (files plus npm dependencies),
// and copies component sources into a consuming project.
package registry
