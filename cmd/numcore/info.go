package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/born-ml/numcore/internal/ndarray"
	"github.com/born-ml/numcore/internal/simd"
)

type laneWidth struct {
	name  string
	lanes int
}

func laneWidths() []laneWidth {
	return []laneWidth{
		{"float32", simd.Width[float32]()},
		{"float64", simd.Width[float64]()},
		{"int8", simd.Width[int8]()},
		{"int16", simd.Width[int16]()},
		{"int32", simd.Width[int32]()},
		{"int64", simd.Width[int64]()},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show vector capabilities and parallel settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			cfg := ndarray.ParallelConfig()

			fmt.Fprintf(out, "Detected level: %s\n", simd.Detected())
			fmt.Fprintf(out, "Active level:   %s", simd.CurrentLevel())
			if simd.NoSimdEnv() {
				fmt.Fprintf(out, " (%s set)", simd.NoSimdEnvVar)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Vector bytes:   %d\n", simd.VectorBytes())
			fmt.Fprintf(out, "Alignment:      %d\n", simd.Alignment())

			widths := lo.Map(laneWidths(), func(w laneWidth, _ int) string {
				return fmt.Sprintf("%s=%d", w.name, w.lanes)
			})
			fmt.Fprintf(out, "Lanes:          %s\n", strings.Join(widths, " "))

			fmt.Fprintf(out, "Parallel:       enabled=%t workers=%d threshold=%d min_chunk=%d\n",
				cfg.Enabled, cfg.NumWorkers, cfg.Threshold, cfg.MinChunkSize)
		},
	}
}
