package cmd

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrUsage is returned for a wrong number of positional arguments or bad flags.
	ErrUsage = errors.New("usage error")
	// ErrMalformedQuantum is returned when the quantum argument contains a non-digit.
	ErrMalformedQuantum = errors.New("quantum must be a positive integer")
	// ErrTickLimit is returned by the HTTP API when a process table could run
	// past the server's tick limit.
	ErrTickLimit = errors.New("simulation exceeds tick limit")
)

// exitStatus maps a run error to the process exit status.
// I/O failures keep the errno of the underlying syscall (ENOENT, EACCES, ...);
// usage, quantum and malformed table errors are EINVAL.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var errno unix.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return int(unix.EINVAL)
}
