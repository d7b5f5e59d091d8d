package registry

import "github.com/galaxy-ui/galaxy/internal/framework"

// ComponentType is the category tag of a registry entry.
type ComponentType string

const (
	TypeUI    ComponentType = "registry:ui"
	TypeLib   ComponentType = "registry:lib"
	TypeHook  ComponentType = "registry:hook"
	TypeBlock ComponentType = "registry:block"
)

// ValidTypes contains all valid component type values.
var ValidTypes = []ComponentType{TypeUI, TypeLib, TypeHook, TypeBlock}

// ParseType accepts either the full tag ("registry:ui") or its short form ("ui").
func ParseType(s string) (ComponentType, bool) {
	for _, t := range ValidTypes {
		if s == string(t) || "registry:"+s == string(t) {
			return t, true
		}
	}
	return "", false
}

// Component is a single installable registry entry.
type Component struct {
	Name                 string        `json:"-"`
	Type                 ComponentType `json:"type"`
	Description          string        `json:"description,omitempty"`
	Files                []string      `json:"files"`
	Dependencies         []string      `json:"dependencies,omitempty"`
	DevDependencies      []string      `json:"devDependencies,omitempty"`
	RegistryDependencies []string      `json:"registryDependencies,omitempty"`
}

// Group is a named, ordered bundle of component names installable as a unit.
type Group struct {
	Name        string   `json:"-"`
	Description string   `json:"description,omitempty"`
	Components  []string `json:"components"`
}

// Registry is the immutable, loaded manifest for one framework.
type Registry struct {
	Framework  framework.Framework
	Components map[string]*Component
	Groups     map[string]*Group

	// folded maps lower-cased component names to their canonical name.
	folded map[string]string
}

// DependencyNode represents a node in the resolution tree.
type DependencyNode struct {
	Name      string
	Component *Component
	Group     *Group
	Children  []*DependencyNode
	Deduped   bool // true if this component was already seen earlier in the tree
	Missing   bool // true if a registry dependency names no known component
}

// InstallSet is the flattened result of resolving a request.
type InstallSet struct {
	Components      []*Component // dependencies before dependents
	Files           []string     // deduplicated, in resolution order
	Dependencies    []string     // deduplicated, sorted
	DevDependencies []string     // deduplicated, sorted
	Warnings        []string
}
