package detect

import (
	"fmt"
	"os"
	"path/filepath"
)

// PackageManager identifies the JavaScript package manager owning a project.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// PackageManagers lists every supported manager.
var PackageManagers = []PackageManager{NPM, PNPM, Yarn, Bun}

// lockfiles maps lock files to their manager, in priority order.
var lockfiles = []struct {
	file string
	pm   PackageManager
}{
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// DetectPackageManager returns the manager whose lock file is present under
// root, defaulting to npm.
func DetectPackageManager(root string) PackageManager {
	for _, l := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, l.file)); err == nil {
			return l.pm
		}
	}
	return NPM
}

// ParsePackageManager converts a user-supplied name.
func ParsePackageManager(s string) (PackageManager, error) {
	for _, pm := range PackageManagers {
		if string(pm) == s {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q (want npm, pnpm, yarn or bun)", s)
}
