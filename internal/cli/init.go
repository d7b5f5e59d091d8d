package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/detect"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/galaxy-ui/galaxy/internal/textdiff"
	"github.com/spf13/cobra"
)

// fallbackFramework is used by `init --yes` when detection fails.
const fallbackFramework = framework.React

var (
	initYes       bool
	initForce     bool
	initFramework string
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults without prompting")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing components.json without asking")
	initCmd.Flags().StringVar(&initFramework, "framework", "", "Framework to configure (angular, react, vue); detected from package.json by default")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure a project for Galaxy UI",
	Long: `Create components.json for the current project and install the base dependencies.

The framework is detected from package.json (@angular/core, react or vue) unless
--framework is given. Without --yes you are asked to confirm the styling and
alias choices. An existing components.json is only replaced after confirmation
or with --force; the changes are shown before they are written.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ask := newPrompter(cmd.InOrStdin(), out)

	root, err := projectRoot()
	if err != nil {
		return err
	}

	fw, err := initTargetFramework(out, root)
	if err != nil {
		return err
	}

	pm, err := resolvePackageManager(root)
	if err != nil {
		return err
	}
	log.Debug("init", "root", root, "framework", fw, "packageManager", pm)

	var previous []byte
	if project.Exists(root) {
		previous, err = os.ReadFile(project.ConfigPath(root))
		if err != nil {
			return fmt.Errorf("reading existing config: %w", err)
		}
		if !initForce && !initYes {
			if !ask.Confirm(branding.ConfigFile()+" already exists. Overwrite it?", false) {
				fmt.Fprintf(out, "Kept the existing %s.\n", branding.ConfigFile())
				return nil
			}
		} else if !initForce {
			return fmt.Errorf("%s already exists in %s (use --force to overwrite)", branding.ConfigFile(), root)
		}
	}

	cfg := project.Default(fw)
	if !initYes {
		customize(ask, cfg)
	}

	data, err := project.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := project.Validate(data); err != nil {
		printFailure(out, "%s was not written", branding.ConfigFile())
		return err
	}
	if previous != nil {
		if !textdiff.Write(out, "current "+branding.ConfigFile(), "new "+branding.ConfigFile(), string(previous), string(data), 3) {
			fmt.Fprintf(out, "%s is already up to date.\n", branding.ConfigFile())
		}
	}
	if err := project.Save(root, cfg); err != nil {
		return err
	}
	printSuccess(out, "Wrote %s for %s", branding.ConfigFile(), fw.DisplayName())

	if detect.IsAlreadyInitialized(root) {
		fmt.Fprintln(out, mutedStyle.Render("Base dependencies already present, skipping install."))
	} else if err := installPackages(cmd.Context(), out, root, pm, cfg.BaseDependencies(), false); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Project ready. Add components with `%s add <name>`.\n", branding.CLIName())
	return nil
}

// initTargetFramework picks the framework from --framework or package.json.
// Detection failure is an error unless --yes accepts the fallback.
func initTargetFramework(out io.Writer, root string) (framework.Framework, error) {
	if initFramework != "" {
		return framework.Parse(initFramework)
	}
	fw := detect.Framework(root)
	if fw != framework.Unknown {
		fmt.Fprintf(out, "Detected %s project.\n", fw.DisplayName())
		return fw, nil
	}
	if !initYes {
		return "", errors.New("could not detect a supported framework from package.json; pass --framework (angular, react, vue) or --yes to use " + string(fallbackFramework))
	}
	printWarning(out, "Could not detect a framework, defaulting to %s", fallbackFramework.DisplayName())
	return fallbackFramework, nil
}

// customize lets the user adjust the default config interactively.
func customize(ask *prompter, cfg *project.Config) {
	cfg.Tailwind.BaseColor = ask.Select("Base color", project.BaseColors, cfg.Tailwind.BaseColor)
	cfg.Tailwind.CSSVariables = ask.Confirm("Use CSS variables for theming?", cfg.Tailwind.CSSVariables)
	cfg.IconLibrary = ask.Select("Icon library", project.IconLibraries, cfg.IconLibrary)
	cfg.Tailwind.CSS = ask.Ask("Global CSS file", cfg.Tailwind.CSS)
	cfg.Aliases.Components = ask.Ask("Import alias for components", cfg.Aliases.Components)
	cfg.Aliases.Utils = ask.Ask("Import alias for utils", cfg.Aliases.Utils)
}
