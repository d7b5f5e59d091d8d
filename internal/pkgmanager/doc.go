// Package pkgmanager installs npm packages into a consuming project through
// the project's own package manager (npm, pnpm, yarn or bun).
package pkgmanager
