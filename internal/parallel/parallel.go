// Package parallel splits independent index ranges across goroutines.
//
// It is the only source of concurrency in numcore: a single synchronous call
// forks chunks, waits for all of them and returns. Chunks never overlap, so
// callers need no synchronization as long as each index is written once.
package parallel

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// WorkersEnvVar overrides the default worker count.
const WorkersEnvVar = "NUMCORE_WORKERS"

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
	Threshold    int  // Ranges of at most this many items run sequentially.
}

// DefaultConfig returns defaults based on CPU count.
// NUMCORE_WORKERS, when set to a positive integer, replaces the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	if v, err := strconv.Atoi(os.Getenv(WorkersEnvVar)); err == nil && v > 0 {
		n = v
	}
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
		Threshold:    1000,
	}
}

// Sequential returns a configuration that never forks.
func Sequential() Config {
	return Config{NumWorkers: 1}
}

// Range calls f over [0, n) split into disjoint [lo, hi) chunks.
// Every chunk boundary except n itself is a multiple of align, so callers
// processing fixed-width blocks never see a block straddle two chunks.
// Falls back to a single f(0, n) call if parallelism is disabled or n is
// not above the threshold.
func Range(n, align int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n <= cfg.Threshold {
		f(0, n)
		return
	}

	chunk := ChunkSize(n, align, cfg)
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			f(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // chunk functions never fail
}

// ChunkSize returns the chunk length Range uses for n items.
func ChunkSize(n, align int, cfg Config) int {
	align = max(align, 1)
	workers := max(cfg.NumWorkers, 1)
	chunk := max((n+workers-1)/workers, cfg.MinChunkSize, 1)
	if r := chunk % align; r != 0 {
		chunk += align - r
	}
	return chunk
}
