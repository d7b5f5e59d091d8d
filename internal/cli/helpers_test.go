package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/galaxy-ui/galaxy/internal/detect"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/pkgmanager"
	"github.com/galaxy-ui/galaxy/internal/project"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// testEnv isolates one command run: a fresh HOME, reset flags, and a
// package manager runner that only records.
type testEnv struct {
	root   string
	runner *pkgmanager.RecordingRunner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("GALAXY_REGISTRY_DIR", "")
	t.Setenv("GALAXY_PACKAGE_MANAGER", "")
	t.Setenv("GALAXY_STRICT", "")
	viper.Reset()
	t.Cleanup(viper.Reset)

	env := &testEnv{root: t.TempDir(), runner: &pkgmanager.RecordingRunner{}}
	if err := os.Mkdir(filepath.Join(env.root, "src"), 0755); err != nil {
		t.Fatal(err)
	}

	saved := newInstaller
	newInstaller = func(pm detect.PackageManager) packageInstaller {
		return &pkgmanager.Installer{Manager: pm, Runner: env.runner}
	}
	t.Cleanup(func() { newInstaller = saved })
	return env
}

// run executes the root command with args against the env's project.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--cwd", e.root))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func (e *testEnv) writeFile(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(e.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func (e *testEnv) readFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func (e *testEnv) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.root, filepath.FromSlash(rel)))
	return err == nil
}

// configure writes package.json and the default components.json for fw.
func (e *testEnv) configure(t *testing.T, fw framework.Framework) *project.Config {
	t.Helper()
	marker := map[framework.Framework]string{
		framework.Angular: "@angular/core",
		framework.React:   "react",
		framework.Vue:     "vue",
	}[fw]
	e.writeFile(t, "package.json", `{"name": "app", "dependencies": {"`+marker+`": "*"}}`)
	cfg := project.Default(fw)
	if err := project.Save(e.root, cfg); err != nil {
		t.Fatal(err)
	}
	return cfg
}

// installModule fakes an installed npm package.
func (e *testEnv) installModule(t *testing.T, name, version string) {
	t.Helper()
	e.writeFile(t, "node_modules/"+name+"/package.json", `{"name": "`+name+`", "version": "`+version+`"}`)
}
