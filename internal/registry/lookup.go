package registry

import (
	"sort"
	"strings"
)

// GetComponent returns the component registered under name, or nil.
func (r *Registry) GetComponent(name string) *Component {
	return r.Components[name]
}

// GetGroup returns the group registered under name, or nil.
func (r *Registry) GetGroup(name string) *Group {
	return r.Groups[name]
}

// ComponentNames returns all component names, sorted.
func (r *Registry) ComponentNames() []string {
	return sortedKeys(r.Components)
}

// GroupNames returns all group names, sorted.
func (r *Registry) GroupNames() []string {
	return sortedKeys(r.Groups)
}

// ComponentsByType returns the components of the given type, sorted by name.
func (r *Registry) ComponentsByType(t ComponentType) []*Component {
	var out []*Component
	for _, name := range r.ComponentNames() {
		if c := r.Components[name]; c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ComponentsByGroup returns the group's members in definition order. Members
// that name no component are dropped; an unknown group yields an empty slice.
func (r *Registry) ComponentsByGroup(groupName string) []*Component {
	g, ok := r.Groups[groupName]
	if !ok {
		return []*Component{}
	}
	out := make([]*Component, 0, len(g.Components))
	for _, member := range g.Components {
		if c, ok := r.Components[member]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ResolveName maps user input to a canonical component or group name. Matching
// is by exact component name, then exact group name, then case-insensitive
// component name. Load rejects registries whose component names collide
// case-insensitively, so the last step has at most one candidate.
func (r *Registry) ResolveName(input string) (string, bool) {
	if _, ok := r.Components[input]; ok {
		return input, true
	}
	if _, ok := r.Groups[input]; ok {
		return input, true
	}
	if name, ok := r.folded[strings.ToLower(input)]; ok {
		return name, true
	}
	return "", false
}

// IsGroup reports whether name is a group and not a component.
func (r *Registry) IsGroup(name string) bool {
	if _, ok := r.Components[name]; ok {
		return false
	}
	_, ok := r.Groups[name]
	return ok
}

// GroupsOf returns the sorted names of the groups that list the component.
func (r *Registry) GroupsOf(component string) []string {
	var out []string
	for name, g := range r.Groups {
		for _, member := range g.Components {
			if member == component {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
