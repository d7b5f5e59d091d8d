package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/config"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/registry"
)

//go:embed all:registry
var bundled embed.FS

// OriginBundled names the registry compiled into the binary.
const OriginBundled = "bundled"

// Source is a registry root: one <framework>/registry.json per framework with
// component sources alongside.
type Source struct {
	FS     fs.FS
	Origin string
}

// Bundled returns the registry compiled into the binary.
func Bundled() *Source {
	sub, err := fs.Sub(bundled, "registry")
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled registry: %v", err))
	}
	return &Source{FS: sub, Origin: OriginBundled}
}

// Dir returns the registry override directory, checking (in order):
// 1. the --registry flag value
// 2. <PREFIX>_REGISTRY_DIR env var
// 3. config key "registry_dir"
// An empty result selects the bundled registry.
func Dir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(branding.EnvVar("REGISTRY_DIR")); v != "" {
		return v
	}
	return config.RegistryDir()
}

// Open returns the on-disk registry at dir, or the bundled one when dir is
// empty.
func Open(dir string) (*Source, error) {
	if dir == "" {
		return Bundled(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening registry directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("registry path %s is not a directory", dir)
	}
	return &Source{FS: os.DirFS(dir), Origin: dir}, nil
}

// Frameworks lists the frameworks this source ships a manifest for.
func (s *Source) Frameworks() []framework.Framework {
	var out []framework.Framework
	for _, fw := range framework.All() {
		if _, err := fs.Stat(s.FS, registry.ManifestPath(fw)); err == nil {
			out = append(out, fw)
		}
	}
	return out
}

// Provider returns a registry provider reading from this source.
func (s *Source) Provider() *registry.Provider {
	return registry.NewProvider(s.FS)
}
