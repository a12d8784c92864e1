package cmd

import (
	"fmt"

	"github.com/rr-sim/rr-sim/sim"
)

// parseQuantum converts digit text to a quantum. Any non-digit byte is an error,
// and the value accumulates as uint32 like the process table integers.
func parseQuantum(s string) (int64, error) {
	var q uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q has non-digit %q at offset %d", ErrMalformedQuantum, s, c, i)
		}
		q = q*10 + uint32(c-'0')
	}
	if q == 0 {
		return 0, fmt.Errorf("%w: got %q", sim.ErrInvalidQuantum, s)
	}
	return int64(q), nil
}
