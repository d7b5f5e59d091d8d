package registry

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveForInstall expands the requested names into the ordered, deduplicated
// set of files and npm dependencies to install. Registry dependencies are
// followed transitively. Resolving the same request twice yields equal sets.
func ResolveForInstall(reg *Registry, requested []string) (*InstallSet, error) {
	roots, err := BuildTree(reg, requested)
	if err != nil {
		return nil, err
	}
	return InstallSetFromTree(roots), nil
}

// InstallSetFromTree flattens a tree built by BuildTree into an InstallSet.
func InstallSetFromTree(roots []*DependencyNode) *InstallSet {
	components, warnings := FlattenTree(roots)

	set := &InstallSet{
		Components: components,
		Warnings:   warnings,
	}

	seenFiles := make(map[string]bool)
	deps := make(map[string]bool)
	devDeps := make(map[string]bool)
	for _, c := range components {
		for _, f := range c.Files {
			if !seenFiles[f] {
				seenFiles[f] = true
				set.Files = append(set.Files, f)
			}
		}
		for _, d := range c.Dependencies {
			deps[d] = true
		}
		for _, d := range c.DevDependencies {
			devDeps[d] = true
		}
	}

	set.Dependencies = setToSorted(deps)
	set.DevDependencies = setToSorted(devDeps)
	return set
}

// ComponentNames returns the names of the resolved components in install order.
func (s *InstallSet) ComponentNames() []string {
	names := make([]string, len(s.Components))
	for i, c := range s.Components {
		names[i] = c.Name
	}
	return names
}

// expandPatterns replaces glob patterns (e.g., "dropdown-*") with the sorted
// component names they match. Plain names pass through untouched. A pattern
// that matches nothing is reported as an unknown component.
func expandPatterns(reg *Registry, requested []string) ([]string, error) {
	var out []string
	for _, input := range requested {
		if !isPattern(input) {
			out = append(out, input)
			continue
		}

		var matched []string
		for _, name := range reg.ComponentNames() {
			ok, err := doublestar.Match(input, name)
			if err != nil {
				return nil, &UnknownComponentError{Name: input, Framework: reg.Framework}
			}
			if ok {
				matched = append(matched, name)
			}
		}
		if len(matched) == 0 {
			return nil, &UnknownComponentError{Name: input, Framework: reg.Framework}
		}
		out = append(out, matched...)
	}
	return out, nil
}

func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func setToSorted(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
