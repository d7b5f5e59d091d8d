package detect

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/project"
)

// frameworkMarkers maps a marker package to its framework, in priority order.
var frameworkMarkers = []struct {
	pkg string
	fw  framework.Framework
}{
	{"@angular/core", framework.Angular},
	{"react", framework.React},
	{"vue", framework.Vue},
}

// Framework inspects package.json under root. A missing or unparsable
// manifest, or one without any marker package, yields framework.Unknown.
func Framework(root string) framework.Framework {
	pkg, err := ReadPackageJSON(root)
	if err != nil {
		log.Debug("framework detection skipped", "root", root, "err", err)
		return framework.Unknown
	}
	for _, m := range frameworkMarkers {
		if pkg.Has(m.pkg) {
			log.Debug("detected framework", "framework", m.fw, "marker", m.pkg)
			return m.fw
		}
	}
	return framework.Unknown
}

// IsAlreadyInitialized reports whether clsx, tailwind-merge and
// class-variance-authority are all declared in package.json. It is false when
// package.json is missing.
func IsAlreadyInitialized(root string) bool {
	pkg, err := ReadPackageJSON(root)
	if err != nil {
		return false
	}
	for _, name := range project.UtilityPackages {
		if !pkg.Has(name) {
			return false
		}
	}
	return true
}

// HasSrcDir reports whether root contains a src directory.
func HasSrcDir(root string) bool {
	info, err := os.Stat(filepath.Join(root, "src"))
	return err == nil && info.IsDir()
}
