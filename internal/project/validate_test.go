package project

import (
	"errors"
	"slices"
	"testing"

	"github.com/galaxy-ui/galaxy/internal/framework"
)

func TestValidateMinimalConfigFillsDefaults(t *testing.T) {
	raw := `{"framework": "react", "aliases": {"components": "@/components", "utils": "@/lib/utils"}}`

	cfg, err := Validate([]byte(raw))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Framework != framework.React {
		t.Errorf("Framework = %q", cfg.Framework)
	}
	if cfg.Tailwind.BaseColor != "slate" {
		t.Errorf("BaseColor = %q, want slate", cfg.Tailwind.BaseColor)
	}
	if !cfg.Tailwind.CSSVariables {
		t.Error("CSSVariables should default to true")
	}
	if !cfg.TypeScript {
		t.Error("TypeScript should default to true")
	}
	if cfg.IconLibrary != "lucide" {
		t.Errorf("IconLibrary = %q, want lucide", cfg.IconLibrary)
	}
	if cfg.Tailwind.CSS != "src/index.css" {
		t.Errorf("CSS = %q, want the react default", cfg.Tailwind.CSS)
	}
}

func TestValidateKeepsExplicitFalse(t *testing.T) {
	raw := `{"framework": "vue", "typescript": false, "tailwind": {"cssVariables": false},
		"aliases": {"components": "@/components", "utils": "@/lib/utils"}}`

	cfg, err := Validate([]byte(raw))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.TypeScript || cfg.Tailwind.CSSVariables {
		t.Errorf("explicit false overwritten: %+v", cfg)
	}
	if cfg.Tailwind.CSS != "src/assets/index.css" {
		t.Errorf("CSS = %q, want the vue default", cfg.Tailwind.CSS)
	}
}

func TestValidateMissingFramework(t *testing.T) {
	raw := `{"aliases": {"components": "@/components", "utils": "@/lib/utils"}}`

	_, err := Validate([]byte(raw))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if !slices.Contains(ve.Fields(), "/framework") {
		t.Errorf("Fields() = %v, want /framework", ve.Fields())
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	raw := `{
		"framework": "svelte",
		"typescript": "yes",
		"tailwind": {"baseColor": "purple", "prefix": "Bad Prefix"},
		"aliases": {"components": ""},
		"iconLibrary": "feather"
	}`

	_, err := Validate([]byte(raw))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}

	fields := ve.Fields()
	for _, want := range []string{
		"/framework",
		"/typescript",
		"/tailwind/baseColor",
		"/tailwind/prefix",
		"/tailwind/css",
		"/aliases/components",
		"/aliases/utils",
		"/iconLibrary",
	} {
		if !slices.Contains(fields, want) {
			t.Errorf("missing issue for %s in %v", want, fields)
		}
	}
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	raw := `{"framework": "react", "aliases": {"components": "@/components", "utils": "@/lib/utils"}, "style": "new-york"}`

	_, err := Validate([]byte(raw))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	for _, raw := range []string{"{", "[]", `"string"`} {
		_, err := Validate([]byte(raw))
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Validate(%q) err = %v, want *ValidationError", raw, err)
		}
	}
}
