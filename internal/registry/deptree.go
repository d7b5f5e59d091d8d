package registry

import (
	"fmt"
	"slices"
)

// BuildTree resolves each requested name (component, group or glob pattern) and
// recursively attaches registry dependencies. A component appearing a second
// time anywhere in the forest is marked Deduped and not expanded again, which
// also guards against dependency cycles.
func BuildTree(reg *Registry, requested []string) ([]*DependencyNode, error) {
	names, err := expandPatterns(reg, requested)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	roots := make([]*DependencyNode, 0, len(names))
	for _, input := range names {
		canonical, ok := reg.ResolveName(input)
		if !ok {
			return nil, &UnknownComponentError{Name: input, Framework: reg.Framework}
		}

		if reg.IsGroup(canonical) {
			g := reg.Groups[canonical]
			node := &DependencyNode{Name: canonical, Group: g}
			for _, member := range reg.ComponentsByGroup(canonical) {
				node.Children = append(node.Children, buildNode(reg, member.Name, seen))
			}
			roots = append(roots, node)
			continue
		}
		roots = append(roots, buildNode(reg, canonical, seen))
	}
	return roots, nil
}

func buildNode(reg *Registry, name string, seen map[string]bool) *DependencyNode {
	node := &DependencyNode{Name: name}

	if seen[name] {
		node.Deduped = true
		return node
	}
	seen[name] = true

	c := reg.GetComponent(name)
	if c == nil {
		node.Missing = true
		return node
	}
	node.Component = c

	for _, dep := range c.RegistryDependencies {
		depName, ok := reg.ResolveName(dep)
		if !ok || reg.IsGroup(depName) {
			node.Children = append(node.Children, &DependencyNode{Name: dep, Missing: true})
			continue
		}
		node.Children = append(node.Children, buildNode(reg, depName, seen))
	}
	return node
}

// FlattenTree returns the components of the forest in topological order
// (dependencies first), each at most once, plus warnings for missing
// registry dependencies.
func FlattenTree(roots []*DependencyNode) ([]*Component, []string) {
	seen := make(map[string]bool)
	var result []*Component
	var warnings []string
	for _, root := range roots {
		flattenRecursive(root, "", seen, &result, &warnings)
	}
	return result, warnings
}

func flattenRecursive(node *DependencyNode, parent string, seen map[string]bool, result *[]*Component, warnings *[]string) {
	if node == nil || node.Deduped {
		return
	}
	if node.Missing {
		msg := fmt.Sprintf("registry dependency %q not found", node.Name)
		if parent != "" {
			msg = fmt.Sprintf("%s: %s", parent, msg)
		}
		if !slices.Contains(*warnings, msg) {
			*warnings = append(*warnings, msg)
		}
		return
	}

	// Process children first (dependencies before dependents).
	for _, child := range node.Children {
		flattenRecursive(child, node.Name, seen, result, warnings)
	}

	if node.Component != nil && !seen[node.Name] {
		seen[node.Name] = true
		*result = append(*result, node.Component)
	}
}
