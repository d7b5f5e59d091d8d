package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PackageJSON is the subset of package.json the CLI reads.
type PackageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ReadPackageJSON parses root/package.json.
func ReadPackageJSON(root string) (*PackageJSON, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, fmt.Errorf("reading package.json: %w", err)
	}
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &pkg, nil
}

// Has reports whether name appears in dependencies or devDependencies.
func (p *PackageJSON) Has(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// Range returns the declared version range for name, preferring
// dependencies over devDependencies.
func (p *PackageJSON) Range(name string) (string, bool) {
	if r, ok := p.Dependencies[name]; ok {
		return r, true
	}
	r, ok := p.DevDependencies[name]
	return r, ok
}
