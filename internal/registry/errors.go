package registry

import (
	"fmt"
	"strings"

	"github.com/galaxy-ui/galaxy/internal/framework"
)

// NotFoundError is returned when a framework's registry manifest is absent.
type NotFoundError struct {
	Framework framework.Framework
	Path      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry for %s not found at %s", e.Framework, e.Path)
}

// ParseError is returned when a registry manifest is not valid JSON or does not
// match the registry shape.
type ParseError struct {
	Path   string
	Issues []string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing registry %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid registry %s: %s", e.Path, strings.Join(e.Issues, "; "))
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownComponentError names a requested identifier that matches neither a
// component nor a group.
type UnknownComponentError struct {
	Name      string
	Framework framework.Framework
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component or group %q in the %s registry", e.Name, e.Framework)
}
