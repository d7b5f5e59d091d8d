package pkgmanager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
)

// SplitSpec splits "name@range" into its parts. Scoped names keep their
// leading "@": "@radix-ui/react-slot@^1.0.0" yields "@radix-ui/react-slot"
// and "^1.0.0".
func SplitSpec(spec string) (name, versionRange string) {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return spec, ""
	}
	return spec[:at], spec[at+1:]
}

// InstalledVersion reads the version of name from root/node_modules.
func InstalledVersion(root, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, "node_modules", filepath.FromSlash(name), "package.json"))
	if err != nil {
		return "", false
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil || pkg.Version == "" {
		return "", false
	}
	return pkg.Version, true
}

// Pending filters specs down to those not already satisfied in node_modules.
// A bare name is satisfied by any installed version. A spec whose range or
// installed version does not parse is kept.
func Pending(root string, specs []string) []string {
	var pending []string
	for _, spec := range specs {
		if satisfied(root, spec) {
			log.Debug("package already installed", "spec", spec)
			continue
		}
		pending = append(pending, spec)
	}
	return pending
}

func satisfied(root, spec string) bool {
	name, versionRange := SplitSpec(spec)
	installed, ok := InstalledVersion(root, name)
	if !ok {
		return false
	}
	if versionRange == "" || versionRange == "latest" {
		return true
	}

	constraint, err := semver.NewConstraint(versionRange)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(strings.TrimPrefix(installed, "v"))
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
