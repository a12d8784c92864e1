package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rr-sim/rr-sim/sim"
)

// ErrTruncatedInput is returned when the stream ends before all 3N+1 integers are read.
var ErrTruncatedInput = errors.New("reached end of input while looking for another integer")

// tokenScanner yields maximal runs of ASCII digits from a byte stream.
// Every other byte is a separator. Values accumulate as uint32 and wrap on overflow.
type tokenScanner struct {
	r     *bufio.Reader
	count int // integers read so far
}

func (ts *tokenScanner) next() (uint32, error) {
	var current uint32
	started := false
	for {
		c, err := ts.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				ts.count++
				return current, nil
			}
			return 0, err
		}
		if c < '0' || c > '9' {
			if started {
				ts.count++
				return current, nil
			}
			continue
		}
		current = current*10 + uint32(c-'0')
		started = true
	}
}

// ParseProcessTable reads a process count N followed by N (pid, arrival, burst)
// triples. Records are returned in stream order.
func ParseProcessTable(r io.Reader) ([]sim.Process, error) {
	ts := &tokenScanner{r: bufio.NewReader(r)}
	want := 1
	readInt := func() (int64, error) {
		v, err := ts.next()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: found %d of %d integers", ErrTruncatedInput, ts.count, want)
		}
		if err != nil {
			return 0, fmt.Errorf("reading process table: %w", err)
		}
		return int64(v), nil
	}

	n, err := readInt()
	if err != nil {
		return nil, err
	}
	want = 3*int(n) + 1

	procs := make([]sim.Process, 0, min(n, 1<<16))
	for i := int64(0); i < n; i++ {
		pid, err := readInt()
		if err != nil {
			return nil, err
		}
		arrival, err := readInt()
		if err != nil {
			return nil, err
		}
		burst, err := readInt()
		if err != nil {
			return nil, err
		}
		procs = append(procs, sim.NewProcess(pid, arrival, burst))
	}
	return procs, nil
}

// LoadProcessTable opens path and parses it with ParseProcessTable.
// Open and read failures keep the underlying *fs.PathError in the chain.
func LoadProcessTable(path string) ([]sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process table: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("Error closing %s: %v", path, closeErr)
		}
	}()

	procs, err := ParseProcessTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Infof("Loaded %d processes from %s", len(procs), path)
	return procs, nil
}
