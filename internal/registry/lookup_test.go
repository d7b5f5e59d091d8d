package registry

import (
	"fmt"
	"strings"
	"testing"

	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveName(t *testing.T) {
	reg := loadTestRegistry(t)

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"dialog", "dialog", true},
		{"DIALOG", "dialog", true},
		{"Dialog", "dialog", true},
		{"forms", "forms", true},
		{"FORMS", "", false}, // groups match exactly only
		{"nope", "", false},
	}
	for _, tt := range tests {
		got, ok := reg.ResolveName(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ResolveName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveNamePrefersComponentOverGroup(t *testing.T) {
	reg, err := Parse([]byte(`{
		"components": {"card": {"type": "registry:ui", "files": ["ui/card.tsx"]}},
		"groups": {"card": {"components": []}}
	}`), framework.React, "inline")
	if err != nil {
		t.Fatal(err)
	}
	if reg.IsGroup("card") {
		t.Error("IsGroup(card) should be false when a component shares the name")
	}
}

func TestComponentsByGroupKeepsOrderAndDropsUnknown(t *testing.T) {
	reg := loadTestRegistry(t)

	got := reg.ComponentsByGroup("forms")
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "label,button" {
		t.Errorf("ComponentsByGroup(forms) = %v, want [label button]", names)
	}

	if empty := reg.ComponentsByGroup("absent"); empty == nil || len(empty) != 0 {
		t.Errorf("ComponentsByGroup(absent) = %v, want empty non-nil slice", empty)
	}
}

func TestComponentsByType(t *testing.T) {
	reg := loadTestRegistry(t)

	libs := reg.ComponentsByType(TypeLib)
	if len(libs) != 1 || libs[0].Name != "utils" {
		t.Errorf("ComponentsByType(lib) = %v", libs)
	}
	ui := reg.ComponentsByType(TypeUI)
	var names []string
	for _, c := range ui {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "button,dialog,label,missing-source" {
		t.Errorf("ComponentsByType(ui) = %v", names)
	}
}

func TestGroupsOf(t *testing.T) {
	reg := loadTestRegistry(t)
	if got := reg.GroupsOf("button"); len(got) != 1 || got[0] != "forms" {
		t.Errorf("GroupsOf(button) = %v", got)
	}
	if got := reg.GroupsOf("dialog"); len(got) != 0 {
		t.Errorf("GroupsOf(dialog) = %v", got)
	}
}

func TestParseType(t *testing.T) {
	if got, ok := ParseType("ui"); !ok || got != TypeUI {
		t.Errorf("ParseType(ui) = %q, %v", got, ok)
	}
	if got, ok := ParseType("registry:hook"); !ok || got != TypeHook {
		t.Errorf("ParseType(registry:hook) = %q, %v", got, ok)
	}
	if _, ok := ParseType("widget"); ok {
		t.Error("ParseType(widget) should fail")
	}
}

// genRegistry draws a registry with distinct lower-case component names and a
// few groups whose members may reference unknown names.
func genRegistry(rt *rapid.T) *Registry {
	names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z][a-z0-9-]{0,10}`), 1, 12, rapid.ID[string]).Draw(rt, "names")

	var b strings.Builder
	b.WriteString(`{"components": {`)
	for i, n := range names {
		if i > 0 {
			b.WriteString(",")
		}
		var deps []string
		for j := 0; j < i; j++ {
			if rapid.Bool().Draw(rt, fmt.Sprintf("dep-%d-%d", i, j)) {
				deps = append(deps, fmt.Sprintf("%q", names[j]))
			}
		}
		fmt.Fprintf(&b, `%q: {"type": "registry:ui", "files": ["ui/%s.tsx"], "dependencies": ["pkg-%s"], "registryDependencies": [%s]}`,
			n, n, n, strings.Join(deps, ","))
	}
	b.WriteString(`}, "groups": {"grp": {"components": [`)
	members := rapid.SliceOf(rapid.SampledFrom(append(append([]string{}, names...), "unknown-member"))).Draw(rt, "members")
	for i, m := range members {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q", m)
	}
	b.WriteString(`]}}}`)

	reg, err := Parse([]byte(b.String()), framework.React, "generated")
	if err != nil {
		rt.Fatalf("Parse generated registry: %v\n%s", err, b.String())
	}
	return reg
}

func TestProperty_ResolveNameIdentityAndUpperCase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := genRegistry(rt)
		for _, n := range reg.ComponentNames() {
			got, ok := reg.ResolveName(n)
			require.True(rt, ok, "ResolveName(%q) should resolve", n)
			require.Equal(rt, n, got)

			got, ok = reg.ResolveName(strings.ToUpper(n))
			require.True(rt, ok, "ResolveName(%q) should resolve", strings.ToUpper(n))
			require.Equal(rt, n, got)
		}
	})
}

func TestProperty_GroupOrderWithUnknownFiltered(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := genRegistry(rt)

		var want []string
		for _, m := range reg.Groups["grp"].Components {
			if reg.GetComponent(m) != nil {
				want = append(want, m)
			}
		}

		var got []string
		for _, c := range reg.ComponentsByGroup("grp") {
			got = append(got, c.Name)
		}
		require.Equal(rt, want, got)
	})
}
