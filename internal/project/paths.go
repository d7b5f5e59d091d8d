package project

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// aliasPrefixes are the import prefixes that point at the project's source root.
var aliasPrefixes = []string{"@/", "~/"}

// ResolvePath maps an import alias to a directory on disk. "@/x" and "~/x"
// resolve under root/src when the project has a src directory, else under
// root. Anything else is taken as a path relative to root.
func ResolvePath(root, alias string) string {
	for _, prefix := range aliasPrefixes {
		if rest, ok := strings.CutPrefix(alias, prefix); ok {
			base := root
			if info, err := os.Stat(filepath.Join(root, "src")); err == nil && info.IsDir() {
				base = filepath.Join(root, "src")
			}
			return filepath.Join(base, filepath.FromSlash(rest))
		}
	}
	return filepath.Join(root, filepath.FromSlash(alias))
}

// uiAlias returns the alias ui/ files are written under.
func (c *Config) uiAlias() string {
	if c.Aliases.UI != "" {
		return c.Aliases.UI
	}
	return path.Join(c.Aliases.Components, "ui")
}

// libAlias returns the alias lib/ files are written under.
func (c *Config) libAlias() string {
	if c.Aliases.Lib != "" {
		return c.Aliases.Lib
	}
	return path.Dir(c.Aliases.Utils)
}

// hooksAlias returns the alias hooks/ files are written under.
func (c *Config) hooksAlias() string {
	if c.Aliases.Hooks != "" {
		return c.Aliases.Hooks
	}
	return path.Join(path.Dir(c.Aliases.Components), "hooks")
}

// FilePath returns where a registry file (e.g., "ui/button.tsx") is written.
// The leading ui/, lib/ or hooks/ segment selects the matching alias; any
// other file lands under the components alias. lib/utils.* is written at the
// utils alias itself so that imports of it resolve.
func (c *Config) FilePath(root, rel string) string {
	rel = path.Clean(filepath.ToSlash(rel))
	first, rest, found := strings.Cut(rel, "/")
	if found {
		switch first {
		case "ui":
			return filepath.Join(ResolvePath(root, c.uiAlias()), filepath.FromSlash(rest))
		case "lib":
			if ext := path.Ext(rest); strings.TrimSuffix(rest, ext) == "utils" {
				return ResolvePath(root, c.Aliases.Utils) + ext
			}
			return filepath.Join(ResolvePath(root, c.libAlias()), filepath.FromSlash(rest))
		case "hooks":
			return filepath.Join(ResolvePath(root, c.hooksAlias()), filepath.FromSlash(rest))
		}
	}
	return filepath.Join(ResolvePath(root, c.Aliases.Components), filepath.FromSlash(rel))
}

// Destination returns FilePath bound to root.
func (c *Config) Destination(root string) func(rel string) string {
	return func(rel string) string {
		return c.FilePath(root, rel)
	}
}

// Canonical import aliases used inside bundled component sources.
const (
	sourceUIAlias         = "@/components/ui"
	sourceComponentsAlias = "@/components"
	sourceUtilsAlias      = "@/lib/utils"
	sourceHooksAlias      = "@/hooks"
)

// RewriteImports rewrites the canonical aliases in a component source to the
// project's configured ones. It returns data unchanged when they already agree.
func (c *Config) RewriteImports(data []byte) []byte {
	// Longer aliases first so "@/components/ui" wins over "@/components".
	// Identity pairs stay in the list to shield a longer alias from a shorter one.
	pairs := []string{
		sourceUIAlias, c.uiAlias(),
		sourceUtilsAlias, c.Aliases.Utils,
		sourceHooksAlias, c.hooksAlias(),
		sourceComponentsAlias, c.Aliases.Components,
	}
	changed := false
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] != pairs[i+1] {
			changed = true
		}
	}
	if !changed {
		return data
	}
	return []byte(strings.NewReplacer(pairs...).Replace(string(data)))
}
