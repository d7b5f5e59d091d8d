package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/detect"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/pkgmanager"
	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/spf13/cobra"
)

var (
	checkRuntime  bool
	checkProject  bool
	checkRegistry bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node and the package manager are on PATH")
	doctorCmd.Flags().BoolVar(&checkProject, "check-project", false, "Verify package.json, components.json and base dependencies")
	doctorCmd.Flags().BoolVar(&checkRegistry, "check-registry", false, "Verify the registry loads and ships every declared file")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the current project",
	Long:  `Run diagnostic checks on the project, its components.json, and the component registry.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		// If no specific flag, run all checks.
		all := !checkRuntime && !checkProject && !checkRegistry

		d := &doctor{out: cmd.OutOrStdout(), root: root}
		if all || checkRuntime {
			d.runtime()
		}
		if all || checkProject {
			d.project()
		}
		if all || checkRegistry {
			d.registry()
		}

		if d.failures > 0 {
			return fmt.Errorf("doctor found %d problem(s)", d.failures)
		}
		return nil
	},
}

// doctor accumulates check results for one run.
type doctor struct {
	out      io.Writer
	root     string
	failures int
}

func (d *doctor) ok(format string, a ...any) {
	fmt.Fprintf(d.out, "  [ OK ] %s\n", fmt.Sprintf(format, a...))
}

func (d *doctor) warn(format string, a ...any) {
	fmt.Fprintf(d.out, "  [WARN] %s\n", fmt.Sprintf(format, a...))
}

func (d *doctor) fail(format string, a ...any) {
	d.failures++
	fmt.Fprintf(d.out, "  [FAIL] %s\n", fmt.Sprintf(format, a...))
}

func (d *doctor) runtime() {
	fmt.Fprintln(d.out, "Runtime check:")
	d.binary("node")
	pm, err := resolvePackageManager(d.root)
	if err != nil {
		d.fail("%v", err)
		return
	}
	d.binary(string(pm))
}

func (d *doctor) binary(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		d.warn("%s not found", name)
		return
	}
	d.ok("%s found at %s", name, path)
}

func (d *doctor) project() {
	fmt.Fprintln(d.out, "Project check:")

	detected := framework.Unknown
	if _, err := detect.ReadPackageJSON(d.root); err != nil {
		d.warn("%v", err)
	} else {
		detected = detect.Framework(d.root)
		if detected == framework.Unknown {
			d.warn("package.json has no @angular/core, react or vue dependency")
		} else {
			d.ok("detected %s", detected.DisplayName())
		}
	}

	cfg, err := project.Load(d.root)
	var verr *project.ValidationError
	switch {
	case errors.As(err, &verr):
		d.fail("%s is invalid:", branding.ConfigFile())
		for _, issue := range verr.Issues {
			fmt.Fprintf(d.out, "         %s\n", issue)
		}
		return
	case err != nil:
		d.fail("%v", err)
		return
	case cfg == nil:
		d.warn("no %s; run `%s init`", branding.ConfigFile(), branding.CLIName())
		return
	}
	d.ok("%s is valid (%s)", branding.ConfigFile(), cfg.Framework)

	if detected != framework.Unknown && detected != cfg.Framework {
		d.fail("%s targets %s but package.json looks like %s", branding.ConfigFile(), cfg.Framework, detected)
	}

	if missing := pkgmanager.Pending(d.root, cfg.BaseDependencies()); len(missing) > 0 {
		d.warn("base dependencies not installed: %s", strings.Join(missing, ", "))
	} else {
		d.ok("base dependencies installed")
	}
}

func (d *doctor) registry() {
	fmt.Fprintln(d.out, "Registry check:")

	src, err := openCatalog()
	if err != nil {
		d.fail("%v", err)
		return
	}
	d.ok("using %s registry", src.Origin)

	targets := src.Frameworks()
	if cfg, err := project.Load(d.root); err == nil && cfg != nil {
		targets = []framework.Framework{cfg.Framework}
	}

	provider := src.Provider()
	for _, fw := range targets {
		reg, err := provider.Get(fw)
		if err != nil {
			d.fail("%v", err)
			continue
		}
		sources, err := provider.Sources(fw)
		if err != nil {
			d.fail("%v", err)
			continue
		}

		missing := 0
		for _, name := range reg.ComponentNames() {
			for _, rel := range reg.Components[name].Files {
				if _, err := fs.Stat(sources, rel); err != nil {
					d.warn("%s/%s: file %s missing from registry", fw, name, rel)
					missing++
				}
			}
		}
		if missing == 0 {
			d.ok("%s registry: %d components, %d groups", fw, len(reg.Components), len(reg.Groups))
		}
	}
}
