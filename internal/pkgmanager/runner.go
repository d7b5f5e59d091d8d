package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command in dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// InstallError reports a package manager that could not be started or exited
// non-zero.
type InstallError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Run resolves name on PATH and executes it, streaming its output.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	command := strings.TrimSpace(name + " " + strings.Join(args, " "))

	bin, err := exec.LookPath(name)
	if err != nil {
		return &InstallError{Command: command, Err: fmt.Errorf("%s not found on PATH: %w", name, err)}
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &InstallError{Command: command, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &InstallError{Command: command, Err: err}
	}
	return nil
}
