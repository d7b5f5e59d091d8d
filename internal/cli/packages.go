package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/galaxy-ui/galaxy/internal/config"
	"github.com/galaxy-ui/galaxy/internal/detect"
	"github.com/galaxy-ui/galaxy/internal/pkgmanager"
)

// packageInstaller adds npm packages to a project.
type packageInstaller interface {
	Install(ctx context.Context, root string, pkgs []string, dev bool) error
}

// newInstaller is replaced in tests to avoid spawning package managers.
var newInstaller = func(pm detect.PackageManager) packageInstaller {
	return pkgmanager.New(pm)
}

// resolvePackageManager honors the package_manager setting, falling back to
// lock file detection.
func resolvePackageManager(root string) (detect.PackageManager, error) {
	if forced := config.PackageManager(); forced != "" {
		pm, err := detect.ParsePackageManager(forced)
		if err != nil {
			return "", fmt.Errorf("%s setting: %w", config.KeyPackageManager, err)
		}
		return pm, nil
	}
	return detect.DetectPackageManager(root), nil
}

// installPackages installs the specs not already satisfied in node_modules.
func installPackages(ctx context.Context, out io.Writer, root string, pm detect.PackageManager, specs []string, dev bool) error {
	pending := pkgmanager.Pending(root, specs)
	if len(pending) == 0 {
		return nil
	}
	kind := "dependencies"
	if dev {
		kind = "dev dependencies"
	}
	fmt.Fprintf(out, "Installing %s with %s: %s\n", kind, pm, strings.Join(pending, ", "))
	if err := newInstaller(pm).Install(ctx, root, pending, dev); err != nil {
		return fmt.Errorf("installing %s: %w", kind, err)
	}
	return nil
}
