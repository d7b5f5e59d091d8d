package registry

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintPlan(t *testing.T) {
	reg := loadTestRegistry(t)

	roots, err := BuildTree(reg, []string{"dialog", "forms"})
	if err != nil {
		t.Fatal(err)
	}
	set, err := ResolveForInstall(reg, []string{"dialog", "forms"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintPlan(&buf, roots, set)
	out := buf.String()

	for _, want := range []string{
		"dialog",
		"└── button",
		"group: forms",
		"button (deduped)",
		"Components: 4 components",
		"Files: 4 files",
		"@radix-ui/react-dialog",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning:") {
		t.Errorf("unexpected warning in output:\n%s", out)
	}
}
