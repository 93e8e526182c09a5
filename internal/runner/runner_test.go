package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		exited bool
	}{
		{"exit 1", exitStatus(1), 1, true},
		{"exit 2 wrapped", fmt.Errorf("query: %w", exitStatus(2)), 2, true},
		{"plain error", errors.New("exec: permission denied"), 0, false},
		{"not found", exec.ErrNotFound, 0, false},
		{"signalled", &exec.ExitError{}, -1, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exited := ExitCode(tt.err)
			assert.Equal(t, tt.exited, exited)
			if tt.exited || tt.code != 0 {
				assert.Equal(t, tt.code, code)
			}
		})
	}
}
