// Package framework defines the closed set of UI frameworks Galaxy UI ships
// components for, and a generic per-framework lookup table used wherever
// behavior differs by framework (registries, config defaults, detection markers).
package framework

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Framework identifies a target UI framework.
type Framework string

const (
	Angular Framework = "angular"
	React   Framework = "react"
	Vue     Framework = "vue"
	Unknown Framework = "unknown"
)

var titler = cases.Title(language.English)

// All returns the supported frameworks in detection priority order.
func All() []Framework {
	return []Framework{Angular, React, Vue}
}

// Parse converts user input into a supported Framework.
func Parse(s string) (Framework, error) {
	f := Framework(strings.ToLower(strings.TrimSpace(s)))
	if f.Valid() {
		return f, nil
	}
	return Unknown, fmt.Errorf("unsupported framework %q: expected one of %s", s, strings.Join(Names(), ", "))
}

// Names returns the supported framework identifiers as strings.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = string(f)
	}
	return names
}

// Valid reports whether f is one of the supported frameworks.
func (f Framework) Valid() bool {
	switch f {
	case Angular, React, Vue:
		return true
	default:
		return false
	}
}

func (f Framework) String() string { return string(f) }

// DisplayName returns the title-cased name (e.g., "React").
func (f Framework) DisplayName() string {
	return titler.String(string(f))
}

// Table maps each framework to a value of type T.
type Table[T any] map[Framework]T

// For returns the entry for f and whether one exists.
func (t Table[T]) For(f Framework) (T, bool) {
	v, ok := t[f]
	return v, ok
}

// MustFor returns the entry for f, panicking when the table is incomplete.
// Tables are package-level literals, so a miss is a programming error.
func (t Table[T]) MustFor(f Framework) T {
	v, ok := t[f]
	if !ok {
		panic(fmt.Sprintf("framework table has no entry for %q", f))
	}
	return v
}
