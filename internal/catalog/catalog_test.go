package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/registry"
)

func TestBundledRegistriesLoad(t *testing.T) {
	src := Bundled()
	if got := src.Frameworks(); !slices.Equal(got, framework.All()) {
		t.Fatalf("Frameworks() = %v, want all", got)
	}

	for _, fw := range framework.All() {
		t.Run(string(fw), func(t *testing.T) {
			reg, err := registry.Load(src.FS, fw)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			// Every declared file ships with the binary and every
			// registry dependency resolves.
			for _, name := range reg.ComponentNames() {
				c := reg.Components[name]
				for _, f := range c.Files {
					if _, err := fs.Stat(src.FS, string(fw)+"/"+f); err != nil {
						t.Errorf("%s: file %s not bundled", name, f)
					}
				}
				for _, dep := range c.RegistryDependencies {
					if reg.GetComponent(dep) == nil {
						t.Errorf("%s: registry dependency %q missing", name, dep)
					}
				}
			}
			for _, g := range reg.GroupNames() {
				if got, want := len(reg.ComponentsByGroup(g)), len(reg.Groups[g].Components); got != want {
					t.Errorf("group %s resolves %d of %d members", g, got, want)
				}
			}
		})
	}
}

func TestBundledDialogPullsButton(t *testing.T) {
	reg, err := registry.Load(Bundled().FS, framework.React)
	if err != nil {
		t.Fatal(err)
	}
	set, err := registry.ResolveForInstall(reg, []string{"dialog"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"utils", "button", "dialog"}
	if got := set.ComponentNames(); !slices.Equal(got, want) {
		t.Errorf("ComponentNames() = %v, want %v", got, want)
	}
}

func TestDirPrecedence(t *testing.T) {
	t.Setenv("GALAXY_REGISTRY_DIR", "/from/env")

	if got := Dir("/from/flag"); got != "/from/flag" {
		t.Errorf("Dir(flag) = %q", got)
	}
	if got := Dir(""); got != "/from/env" {
		t.Errorf("Dir(env) = %q", got)
	}
}

func TestOpen(t *testing.T) {
	src, err := Open("")
	if err != nil || src.Origin != OriginBundled {
		t.Fatalf("Open(\"\") = %+v, %v", src, err)
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "vue"), 0755); err != nil {
		t.Fatal(err)
	}
	manifest := `{"framework": "vue", "components": {"utils": {"type": "registry:lib", "files": ["lib/utils.ts"]}}}`
	if err := os.WriteFile(filepath.Join(dir, "vue", "registry.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	src, err = Open(dir)
	if err != nil {
		t.Fatalf("Open(dir): %v", err)
	}
	if got := src.Frameworks(); !slices.Equal(got, []framework.Framework{framework.Vue}) {
		t.Errorf("Frameworks() = %v, want [vue]", got)
	}
	reg, err := src.Provider().Get(framework.Vue)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if reg.GetComponent("utils") == nil {
		t.Error("utils not loaded from disk")
	}

	if _, err := Open(filepath.Join(dir, "vue", "registry.json")); err == nil {
		t.Error("Open(file) should fail")
	}
	if _, err := Open(filepath.Join(dir, "absent")); err == nil {
		t.Error("Open(absent) should fail")
	}
}
