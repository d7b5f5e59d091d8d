package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/catalog"
	"github.com/galaxy-ui/galaxy/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootCwd      string
	rootVerbose  bool
	rootRegistry string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up a project's components.json and copies accessible,
Tailwind-styled component sources for Angular, React and Vue straight into your codebase.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if rootVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootCwd, "cwd", "", "Project directory (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootRegistry, "registry", "", "Read components from this registry directory instead of the bundled one")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithCommit(commit),
		fang.WithNotifySignal(os.Interrupt),
	)
}

// projectRoot returns the absolute project directory selected by --cwd.
func projectRoot() (string, error) {
	dir := rootCwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}

// openCatalog returns the registry source chosen by --registry, environment
// or user config.
func openCatalog() (*catalog.Source, error) {
	src, err := catalog.Open(catalog.Dir(rootRegistry))
	if err != nil {
		return nil, err
	}
	log.Debug("using registry", "origin", src.Origin)
	return src, nil
}
