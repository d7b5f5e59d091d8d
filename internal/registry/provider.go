package registry

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/galaxy-ui/galaxy/internal/framework"
	gocache "github.com/patrickmn/go-cache"
)

// Provider loads registries from a registry root on first use and caches them
// per framework for its own lifetime. Construct one per CLI invocation.
type Provider struct {
	fsys  fs.FS
	cache *gocache.Cache
}

// NewProvider returns a Provider reading from fsys, whose top-level directories
// are framework names each holding a registry.json and component sources.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys:  fsys,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the registry for fw, loading it on first access. Failed loads are
// not cached.
func (p *Provider) Get(fw framework.Framework) (*Registry, error) {
	if !fw.Valid() {
		return nil, fmt.Errorf("no registry for framework %q", fw)
	}
	if v, ok := p.cache.Get(string(fw)); ok {
		if reg, ok := v.(*Registry); ok {
			return reg, nil
		}
	}

	reg, err := Load(p.fsys, fw)
	if err != nil {
		return nil, err
	}
	p.cache.Set(string(fw), reg, gocache.NoExpiration)
	log.Debug("registry cached", "framework", fw, "components", len(reg.Components), "groups", len(reg.Groups))
	return reg, nil
}

// Sources returns the filesystem holding fw's component sources; file paths in
// the registry are relative to it.
func (p *Provider) Sources(fw framework.Framework) (fs.FS, error) {
	sub, err := fs.Sub(p.fsys, string(fw))
	if err != nil {
		return nil, fmt.Errorf("opening %s sources: %w", fw, err)
	}
	return sub, nil
}

// Loaded returns the frameworks whose registries are currently cached, sorted.
func (p *Provider) Loaded() []framework.Framework {
	items := p.cache.Items()
	out := make([]framework.Framework, 0, len(items))
	for k := range items {
		out = append(out, framework.Framework(k))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
