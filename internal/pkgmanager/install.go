package pkgmanager

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/detect"
)

// Installer adds packages to a project with a specific package manager.
type Installer struct {
	Manager detect.PackageManager
	Runner  Runner
}

// New returns an Installer that shells out to pm.
func New(pm detect.PackageManager) *Installer {
	return &Installer{Manager: pm, Runner: &ExecRunner{}}
}

// Args returns the argv, excluding the binary, that adds pkgs with pm.
func Args(pm detect.PackageManager, pkgs []string, dev bool) []string {
	var args []string
	switch pm {
	case detect.PNPM, detect.Yarn:
		args = []string{"add"}
		if dev {
			args = append(args, "-D")
		}
	case detect.Bun:
		args = []string{"add"}
		if dev {
			args = append(args, "-d")
		}
	default:
		args = []string{"install"}
		if dev {
			args = append(args, "--save-dev")
		}
	}
	return append(args, pkgs...)
}

// Install adds pkgs to the project at root. An empty list is a no-op.
func (i *Installer) Install(ctx context.Context, root string, pkgs []string, dev bool) error {
	if len(pkgs) == 0 {
		return nil
	}
	pm := i.Manager
	if pm == "" {
		pm = detect.NPM
	}
	args := Args(pm, pkgs, dev)
	log.Debug("running package manager", "dir", root, "cmd", string(pm), "args", args)
	return i.Runner.Run(ctx, root, string(pm), args...)
}
