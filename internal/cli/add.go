package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/config"
	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/galaxy-ui/galaxy/internal/registry"
	"github.com/spf13/cobra"
)

var (
	addAll    bool
	addYes    bool
	addDryRun bool
	addStrict bool
)

func init() {
	addCmd.Flags().BoolVarP(&addAll, "all", "a", false, "Add every component in the registry")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip confirmation prompts")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Show what would be installed without changing anything")
	addCmd.Flags().BoolVar(&addStrict, "strict", false, "Fail when a registry file is missing instead of skipping it")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [components...]",
	Short: "Add components to your project",
	Long: `Copy components into the project configured by components.json.

Names may be components, groups, or glob patterns ("*menu*"). Registry
dependencies are added first, their npm packages installed with the project's
package manager, and the files written under the configured aliases. Existing
files are overwritten.`,
	Example: `  galaxy add button dialog
  galaxy add forms --dry-run
  galaxy add --all --yes`,
	RunE: runAdd,
}

// errNoConfig is returned by add, diff and list when init has not run yet.
var errNoConfig = fmt.Errorf("no %s found; run `%s init` first", branding.ConfigFile(), branding.CLIName())

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ask := newPrompter(cmd.InOrStdin(), out)

	root, err := projectRoot()
	if err != nil {
		return err
	}
	cfg, err := project.Load(root)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errNoConfig
	}

	src, err := openCatalog()
	if err != nil {
		return err
	}
	provider := src.Provider()
	reg, err := provider.Get(cfg.Framework)
	if err != nil {
		return err
	}

	names := args
	switch {
	case addAll:
		names = reg.ComponentNames()
	case len(names) == 0 && !addYes:
		fmt.Fprintf(out, "Available: %s\n", strings.Join(reg.ComponentNames(), ", "))
		names = strings.Fields(ask.Ask("Components to add", ""))
	}
	if len(names) == 0 {
		return errors.New("no components specified; pass names or use --all")
	}

	roots, err := registry.BuildTree(reg, names)
	if err != nil {
		return err
	}
	set := registry.InstallSetFromTree(roots)

	dest := cfg.Destination(root)
	existing := existingTargets(dest, set.Files)

	if addDryRun || !addYes {
		registry.PrintPlan(out, roots, set)
		for _, target := range existing {
			printWarning(out, "will overwrite %s", relTo(root, target))
		}
	}
	if addDryRun {
		fmt.Fprintln(out, mutedStyle.Render("Dry run: nothing was changed."))
		return nil
	}
	if !addYes && !ask.Confirm("Proceed with installation?", true) {
		fmt.Fprintln(out, "Installation cancelled.")
		return nil
	}

	pm, err := resolvePackageManager(root)
	if err != nil {
		return err
	}
	if err := installPackages(cmd.Context(), out, root, pm, set.Dependencies, false); err != nil {
		return err
	}
	if err := installPackages(cmd.Context(), out, root, pm, set.DevDependencies, true); err != nil {
		return err
	}

	sources, err := provider.Sources(cfg.Framework)
	if err != nil {
		return err
	}
	result, err := registry.CopyComponentFiles(sources, dest, set.Files, registry.CopyOptions{
		Strict: addStrict || config.Strict(),
		Transform: func(rel string, data []byte) []byte {
			return cfg.RewriteImports(data)
		},
	})
	if result != nil {
		for _, target := range result.Written {
			printSuccess(out, "%s", relTo(root, target))
		}
		for _, rel := range result.Skipped {
			printWarning(out, "skipped %s (not in registry)", rel)
		}
	}
	if err != nil {
		printFailure(out, "copy failed")
		return err
	}

	fmt.Fprintln(out)
	printSuccess(out, "Added %s.", strings.Join(set.ComponentNames(), ", "))
	return nil
}

// existingTargets returns the destinations among files that already exist.
func existingTargets(dest registry.Destination, files []string) []string {
	var out []string
	for _, rel := range files {
		target := dest(rel)
		if _, err := os.Stat(target); err == nil {
			out = append(out, target)
		}
	}
	log.Debug("existing component files", "count", len(out))
	return out
}

// relTo renders target relative to root for display.
func relTo(root, target string) string {
	if rel, err := filepath.Rel(root, target); err == nil {
		return filepath.ToSlash(rel)
	}
	return target
}
