package schema

import (
	"strings"
	"testing"
)

const validConfig = `{
  "framework": "react",
  "typescript": true,
  "tailwind": {"css": "src/index.css", "baseColor": "slate", "cssVariables": true},
  "aliases": {"components": "@/components", "utils": "@/lib/utils"},
  "iconLibrary": "lucide"
}`

func TestValidateValidConfig(t *testing.T) {
	result, err := Validate(Components, []byte(validConfig))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidateCollectsEveryIssue(t *testing.T) {
	data := `{
  "typescript": "yes",
  "tailwind": {"css": "src/index.css", "baseColor": "purple", "cssVariables": true},
  "aliases": {"components": "@/components"},
  "iconLibrary": "lucide"
}`
	result, err := Validate(Components, []byte(data))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	paths := make(map[string]bool)
	for _, issue := range result.Issues {
		paths[issue.Path] = true
	}
	for _, want := range []string{"/framework", "/typescript", "/tailwind/baseColor", "/aliases/utils"} {
		if !paths[want] {
			t.Errorf("missing issue for %s; got %v", want, result.Issues)
		}
	}
}

func TestValidateRequiredNamesField(t *testing.T) {
	data := strings.Replace(validConfig, `"framework": "react",`, "", 1)
	result, err := Validate(Components, []byte(data))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(result.Issues), result.Issues)
	}
	if result.Issues[0].Path != "/framework" {
		t.Errorf("Path = %q, want /framework", result.Issues[0].Path)
	}
	if result.Issues[0].Keyword != "required" {
		t.Errorf("Keyword = %q, want required", result.Issues[0].Keyword)
	}
}

func TestValidateRegistry(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		valid bool
	}{
		{"minimal", `{"components": {}}`, true},
		{"component", `{"components": {"button": {"type": "registry:ui", "files": ["ui/button.tsx"]}}}`, true},
		{"bad type", `{"components": {"button": {"type": "widget", "files": []}}}`, false},
		{"missing files", `{"components": {"button": {"type": "registry:ui"}}}`, false},
		{"group without components", `{"components": {}, "groups": {"forms": {}}}`, false},
		{"components not object", `{"components": []}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(Registry, []byte(tt.data))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %v)", result.Valid, tt.valid, result.Issues)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate(Registry, []byte("{not json")); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	if _, err := Validate("nope", []byte("{}")); err == nil {
		t.Error("expected error for unknown schema")
	}
}

func TestValidateValue(t *testing.T) {
	result, err := ValidateValue(Registry, map[string]any{"components": map[string]any{}})
	if err != nil {
		t.Fatalf("ValidateValue: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %v", result.Issues)
	}
}
