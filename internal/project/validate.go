package project

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/galaxy-ui/galaxy/internal/branding"
	"github.com/galaxy-ui/galaxy/internal/framework"
	"github.com/galaxy-ui/galaxy/internal/schema"
)

// ValidationError lists every field of a project config that violates the
// components.json schema.
type ValidationError struct {
	Issues []schema.Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s: %s", branding.ConfigFile(), strings.Join(parts, "; "))
}

// Fields returns the JSON pointer of each failing field.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		fields[i] = issue.Path
	}
	return fields
}

// Validate parses raw components.json bytes, fills in documented defaults for
// absent optional fields, and checks the result against the schema.
//
// Defaults: typescript true, iconLibrary "lucide", tailwind.baseColor "slate",
// tailwind.cssVariables true, tailwind.prefix "", and tailwind.css /
// tailwind.config from the framework's template.
func Validate(raw []byte) (*Config, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Issues: []schema.Issue{{
			Message: fmt.Sprintf("not a JSON object: %v", err),
			Keyword: "type",
		}}}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	applyDefaults(doc)

	result, err := schema.ValidateValue(schema.Components, doc)
	if err != nil {
		return nil, fmt.Errorf("validating project config: %w", err)
	}
	if !result.Valid {
		return nil, &ValidationError{Issues: result.Issues}
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalizing project config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(normalized, &cfg); err != nil {
		return nil, fmt.Errorf("decoding project config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(doc map[string]any) {
	setDefault(doc, "typescript", true)
	setDefault(doc, "iconLibrary", DefaultIconLibrary)

	if _, ok := doc["tailwind"]; !ok {
		doc["tailwind"] = map[string]any{}
	}
	tw, ok := doc["tailwind"].(map[string]any)
	if !ok {
		return // schema reports the wrong type
	}
	setDefault(tw, "baseColor", DefaultBaseColor)
	setDefault(tw, "cssVariables", true)
	setDefault(tw, "prefix", "")

	name, _ := doc["framework"].(string)
	if d, ok := defaultsByFramework.For(framework.Framework(name)); ok {
		setDefault(tw, "css", d.css)
		setDefault(tw, "config", d.tailwindConfig)
	}
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
