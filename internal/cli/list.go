package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/galaxy-ui/galaxy/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listTypeFilter  string
	listGroupFilter string
	listFramework   string
	listJSON        bool
)

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List registry components",
	Long: `List the components available for the project's framework.

Outside a configured project pass --framework. An optional glob pattern
filters component names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by type (ui, lib, hook, block)")
	listCmd.Flags().StringVar(&listGroupFilter, "group", "", "Only list members of this group")
	listCmd.Flags().StringVar(&listFramework, "framework", "", "Registry to list (angular, react, vue); defaults to the configured framework")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a registry component for display.
type listEntry struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description,omitempty"`
	Groups       []string `json:"groups,omitempty"`
	Dependencies []string `json:"registryDependencies,omitempty"`
	Installed    bool     `json:"installed"`
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	cfg, err := project.Load(root)
	if err != nil {
		if listFramework == "" {
			return err
		}
		log.Debug("ignoring unreadable project config", "err", err)
		cfg = nil
	}

	var fw framework.Framework
	switch {
	case listFramework != "":
		if fw, err = framework.Parse(listFramework); err != nil {
			return err
		}
	case cfg != nil:
		fw = cfg.Framework
	default:
		return fmt.Errorf("%w (or pass --framework)", errNoConfig)
	}

	src, err := openCatalog()
	if err != nil {
		return err
	}
	reg, err := src.Provider().Get(fw)
	if err != nil {
		return err
	}

	candidates, err := listCandidates(reg)
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, c := range candidates {
		if len(args) == 1 {
			if ok, err := doublestar.Match(args[0], c.Name); err != nil {
				return fmt.Errorf("invalid pattern %q: %w", args[0], err)
			} else if !ok {
				continue
			}
		}
		entry := listEntry{
			Name:         c.Name,
			Type:         strings.TrimPrefix(string(c.Type), "registry:"),
			Description:  c.Description,
			Groups:       reg.GroupsOf(c.Name),
			Dependencies: c.RegistryDependencies,
		}
		if cfg != nil && cfg.Framework == fw {
			entry.Installed = installed(cfg, root, c)
		}
		entries = append(entries, entry)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching components.")
		return nil
	}
	return printListTable(cmd, entries)
}

// listCandidates applies the --type and --group filters.
func listCandidates(reg *registry.Registry) ([]*registry.Component, error) {
	var candidates []*registry.Component
	switch {
	case listGroupFilter != "":
		if reg.GetGroup(listGroupFilter) == nil {
			return nil, fmt.Errorf("unknown group %q (groups: %s)", listGroupFilter, strings.Join(reg.GroupNames(), ", "))
		}
		candidates = reg.ComponentsByGroup(listGroupFilter)
	default:
		for _, name := range reg.ComponentNames() {
			candidates = append(candidates, reg.Components[name])
		}
	}

	if listTypeFilter == "" {
		return candidates, nil
	}
	t, ok := registry.ParseType(listTypeFilter)
	if !ok {
		return nil, fmt.Errorf("unknown component type %q (want ui, lib, hook or block)", listTypeFilter)
	}
	var filtered []*registry.Component
	for _, c := range candidates {
		if c.Type == t {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// installed reports whether every file of c exists in the project.
func installed(cfg *project.Config, root string, c *registry.Component) bool {
	if len(c.Files) == 0 {
		return false
	}
	return len(existingTargets(cfg.Destination(root), c.Files)) == len(c.Files)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tINSTALLED\tDESCRIPTION")
	for _, e := range entries {
		mark := "-"
		if e.Installed {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Type, mark, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	if entries == nil {
		entries = []listEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
