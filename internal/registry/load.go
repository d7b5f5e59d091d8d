package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/schema"
)

// ManifestFile is the registry manifest name inside each framework directory.
const ManifestFile = "registry.json"

// manifest mirrors the on-disk registry.json shape.
type manifest struct {
	Framework  framework.Framework   `json:"framework,omitempty"`
	Components map[string]*Component `json:"components"`
	Groups     map[string]*Group     `json:"groups,omitempty"`
}

// ManifestPath returns the slash-separated path of a framework's manifest
// relative to the registry root.
func ManifestPath(fw framework.Framework) string {
	return path.Join(string(fw), ManifestFile)
}

// Load reads and validates <framework>/registry.json from fsys.
func Load(fsys fs.FS, fw framework.Framework) (*Registry, error) {
	p := ManifestPath(fw)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Framework: fw, Path: p}
		}
		return nil, fmt.Errorf("reading registry %s: %w", p, err)
	}
	log.Debug("loading registry", "framework", fw, "path", p, "bytes", len(data))
	return Parse(data, fw, p)
}

// Parse builds a Registry from manifest bytes. name is used in error messages.
func Parse(data []byte, fw framework.Framework, name string) (*Registry, error) {
	result, err := schema.Validate(schema.Registry, data)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	if !result.Valid {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = issue.String()
		}
		return nil, &ParseError{Path: name, Issues: issues}
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	if m.Framework != "" && m.Framework != fw {
		return nil, &ParseError{
			Path:   name,
			Issues: []string{fmt.Sprintf("/framework: declares %q, expected %q", m.Framework, fw)},
		}
	}

	reg := &Registry{
		Framework:  fw,
		Components: make(map[string]*Component, len(m.Components)),
		Groups:     make(map[string]*Group, len(m.Groups)),
		folded:     make(map[string]string, len(m.Components)),
	}

	var issues []string
	for _, cname := range sortedKeys(m.Components) {
		c := m.Components[cname]
		c.Name = cname
		reg.Components[cname] = c

		for _, f := range c.Files {
			if !ValidFilePath(f) {
				issues = append(issues, fmt.Sprintf("/components/%s/files: %q leaves the registry root", cname, f))
			}
		}

		key := strings.ToLower(cname)
		if prev, ok := reg.folded[key]; ok {
			issues = append(issues, fmt.Sprintf("/components/%s: collides with %q when compared case-insensitively", cname, prev))
			continue
		}
		reg.folded[key] = cname
	}
	if len(issues) > 0 {
		return nil, &ParseError{Path: name, Issues: issues}
	}

	for gname, g := range m.Groups {
		g.Name = gname
		reg.Groups[gname] = g
	}

	return reg, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
