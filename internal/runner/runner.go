package runner

import (
	"errors"
	"os/exec"
)

// Runner executes system commands. Mockable for tests.
type Runner interface {
	// Run executes a command, returning combined output and error.
	// A non-zero exit status is reported as an *exec.ExitError.
	Run(name string, args ...string) ([]byte, error)
	// LookPath checks if a binary is in PATH.
	LookPath(name string) (string, error)
}

// SystemRunner executes real system commands.
type SystemRunner struct{}

func (r *SystemRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ExitCode returns the exit status carried by err. ok is false when the
// command never ran to completion (not found, permission denied, killed).
func ExitCode(err error) (code int, ok bool) {
	var coder interface{ ExitCode() int }
	if !errors.As(err, &coder) {
		return 0, false
	}
	code = coder.ExitCode()
	return code, code > 0
}
