package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", fmt.Errorf("%w: x", ErrUsage), int(unix.EINVAL)},
		{"plain error", errors.New("boom"), int(unix.EINVAL)},
		{"wrapped errno", fmt.Errorf("opening: %w", &fs.PathError{Op: "open", Path: "p", Err: unix.EACCES}), int(unix.EACCES)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitStatus(tt.err))
		})
	}
}
