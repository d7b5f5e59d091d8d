package pkgmanager

import (
	"context"
	"strings"
)

// RecordingRunner records commands instead of running them. Err, when set,
// is returned from every call.
type RecordingRunner struct {
	Calls []string
	Err   error
}

func (r *RecordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.Calls = append(r.Calls, strings.Join(append([]string{name}, args...), " "))
	return r.Err
}
