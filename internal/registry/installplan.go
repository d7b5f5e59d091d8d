package registry

import (
	"fmt"
	"io"
	"strings"
)

// PrintTree prints a resolution tree with box-drawing characters.
func PrintTree(w io.Writer, node *DependencyNode, prefix string, isLast bool) {
	if node == nil {
		return
	}

	connector := "├── "
	if isLast {
		connector = "└── "
	}

	label := node.Name
	switch {
	case node.Group != nil:
		label = "group: " + node.Name
	case node.Deduped:
		label += " (deduped)"
	case node.Missing:
		label += " (missing)"
	}

	// For the root node, don't print a connector.
	if prefix == "" {
		fmt.Fprintf(w, "  %s\n", label)
	} else {
		fmt.Fprintf(w, "  %s%s%s\n", prefix, connector, label)
	}

	childPrefix := prefix
	if prefix == "" {
		childPrefix = " "
	} else if isLast {
		childPrefix += "    "
	} else {
		childPrefix += "│   "
	}

	for i, child := range node.Children {
		PrintTree(w, child, childPrefix, i == len(node.Children)-1)
	}
}

// PrintPlan prints the resolution forest and a summary of the install set.
func PrintPlan(w io.Writer, roots []*DependencyNode, set *InstallSet) {
	fmt.Fprintln(w, "Resolving components...")
	fmt.Fprintln(w)

	for _, root := range roots {
		PrintTree(w, root, "", true)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Components: %s\n", countNoun(len(set.Components), "component"))
	fmt.Fprintf(w, "  Files: %s\n", countNoun(len(set.Files), "file"))
	if len(set.Dependencies) > 0 {
		fmt.Fprintf(w, "  Dependencies: %s\n", strings.Join(set.Dependencies, ", "))
	}
	if len(set.DevDependencies) > 0 {
		fmt.Fprintf(w, "  Dev dependencies: %s\n", strings.Join(set.DevDependencies, ", "))
	}
	for _, warning := range set.Warnings {
		fmt.Fprintf(w, "\n  Warning: %s\n", warning)
	}
	fmt.Fprintln(w)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
