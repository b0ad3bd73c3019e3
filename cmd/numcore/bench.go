package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/numcore/internal/kernels"
	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/parallel"
	"github.com/born-ml/numcore/internal/simd"
)

type benchOptions struct {
	size    int
	iters   int
	workers int
	scalar  bool
}

type benchCase struct {
	name string
	run  func(a, b *ndarray.Array[float64]) *ndarray.Array[float64]
}

func benchCases() []benchCase {
	return []benchCase{
		{"add", func(a, b *ndarray.Array[float64]) *ndarray.Array[float64] {
			return ndarray.Materialize(ndarray.Add(a, b))
		}},
		{"axpy", func(a, b *ndarray.Array[float64]) *ndarray.Array[float64] {
			return ndarray.Materialize(ndarray.Add(ndarray.MulScalar(a, 2.5), b))
		}},
		{"neg", func(a, _ *ndarray.Array[float64]) *ndarray.Array[float64] {
			return ndarray.Materialize(ndarray.Neg(a))
		}},
		{"sin", func(a, _ *ndarray.Array[float64]) *ndarray.Array[float64] {
			return ndarray.Materialize(kernels.Sin(a))
		}},
	}
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time expression materialization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.size <= 0 || opts.iters <= 0 {
				return errors.Errorf("size and iters must be positive, got %d and %d", opts.size, opts.iters)
			}
			if opts.scalar {
				defer simd.Force(simd.Scalar, 0)()
			}
			if opts.workers > 0 {
				saved := ndarray.ParallelConfig()
				defer ndarray.SetParallelConfig(saved)
				cfg := saved
				cfg.NumWorkers = opts.workers
				cfg.Enabled = opts.workers > 1
				ndarray.SetParallelConfig(cfg)
			}
			return runBench(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.size, "size", "n", 1_000_000, "elements per operand")
	cmd.Flags().IntVarP(&opts.iters, "iters", "i", 10, "iterations per case")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines (0 keeps the default)")
	cmd.Flags().BoolVar(&opts.scalar, "scalar", false, "force the scalar path")
	return cmd
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	out := cmd.OutOrStdout()
	a := ndarray.New[float64](opts.size)
	b := ndarray.New[float64](opts.size)
	for i := range a.Data() {
		a.Data()[i] = float64(i) * 1e-3
		b.Data()[i] = 1
	}

	slog.Debug("bench setup",
		"size", opts.size,
		"iters", opts.iters,
		"level", simd.CurrentLevel().String(),
		"lanes", simd.Width[float64](),
		"chunk", parallel.ChunkSize(opts.size, simd.Width[float64](), ndarray.ParallelConfig()),
	)

	fmt.Fprintf(out, "%-6s %12s %12s\n", "case", "ns/op", "MB/s")
	for _, c := range benchCases() {
		start := time.Now()
		for range opts.iters {
			r := c.run(a, b)
			if r.Size() != opts.size {
				return errors.Errorf("%s: got %d elements, want %d", c.name, r.Size(), opts.size)
			}
			r.Release()
		}
		elapsed := time.Since(start)
		perOp := elapsed / time.Duration(opts.iters)
		mbps := float64(opts.size*8) / perOp.Seconds() / 1e6
		fmt.Fprintf(out, "%-6s %12d %12.1f\n", c.name, perOp.Nanoseconds(), mbps)
		slog.Debug("bench case done", "case", c.name, "elapsed", elapsed)
	}
	return nil
}
