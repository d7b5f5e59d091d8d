package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/galaxy-ui/galaxy/internal/registry"
	"github.com/galaxy-ui/galaxy/internal/textdiff"
	"github.com/spf13/cobra"
)

var diffContext int

var diffCmd = &cobra.Command{
	Use:   "diff [component]",
	Short: "Compare installed components with the registry",
	Long: `Show how installed component files differ from the registry version.

Without arguments, lists every installed component that has local changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().IntVarP(&diffContext, "context", "U", 3, "Lines of context around each change")
	rootCmd.AddCommand(diffCmd)
}

// fileDiff pairs an installed file with its registry counterpart.
type fileDiff struct {
	rel       string
	target    string
	installed string
	upstream  string
}

func runDiff(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

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
	sources, err := provider.Sources(cfg.Framework)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		name, ok := reg.ResolveName(args[0])
		if !ok || reg.IsGroup(name) {
			return &registry.UnknownComponentError{Name: args[0], Framework: cfg.Framework}
		}
		diffs, err := componentDiffs(cfg, root, sources, reg.Components[name])
		if err != nil {
			return err
		}
		changed := false
		for _, d := range diffs {
			if textdiff.Write(out, relTo(root, d.target), "registry/"+d.rel, d.installed, d.upstream, diffContext) {
				changed = true
			}
		}
		if !changed {
			fmt.Fprintf(out, "%s matches the registry.\n", name)
		}
		return nil
	}

	var changed []string
	for _, name := range reg.ComponentNames() {
		diffs, err := componentDiffs(cfg, root, sources, reg.Components[name])
		if err != nil {
			return err
		}
		for _, d := range diffs {
			if d.installed != d.upstream {
				changed = append(changed, name)
				break
			}
		}
	}
	if len(changed) == 0 {
		fmt.Fprintln(out, "No installed component differs from the registry.")
		return nil
	}
	fmt.Fprintln(out, headerStyle.Render("Components with local changes:"))
	for _, name := range changed {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintf(out, "\nRun `diff <component>` to see the changes.\n")
	return nil
}

// componentDiffs loads each installed file of c with its registry source, as
// it would be written by add. Files missing on either side are left out.
func componentDiffs(cfg *project.Config, root string, sources fs.FS, c *registry.Component) ([]fileDiff, error) {
	var diffs []fileDiff
	for _, rel := range c.Files {
		target := cfg.FilePath(root, rel)
		local, err := os.ReadFile(target)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", target, err)
		}
		upstream, err := fs.ReadFile(sources, rel)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading registry file %s: %w", rel, err)
		}
		diffs = append(diffs, fileDiff{
			rel:       rel,
			target:    target,
			installed: string(local),
			upstream:  string(cfg.RewriteImports(upstream)),
		})
	}
	return diffs, nil
}
