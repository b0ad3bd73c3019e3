package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/numcore/internal/kernels"
	"github.com/born-ml/numcore/internal/ndarray"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through views, assignment and expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			m, err := ndarray.FromSliceShape([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "m         = %v %v\n", m, m.Values())

			row := m.At(1)
			slog.Debug("took view", "row", row)
			row.Assign(ndarray.Full(0.0, 3))
			fmt.Fprintf(out, "m[1] = 0  -> m = %v\n", m.Values())

			a := ndarray.FromSlice([]float64{1, 2, 3, 4})
			b := ndarray.Materialize(ndarray.Neg(a))
			fmt.Fprintf(out, "-a        = %v\n", b.Values())

			b.AssignExpr(ndarray.Add(a, a))
			fmt.Fprintf(out, "a + a     = %v\n", b.Values())

			c := ndarray.Materialize(ndarray.AddScalar(kernels.Abs(ndarray.Neg(a)), 0.5))
			fmt.Fprintf(out, "|-a|+0.5  = %v\n", c.Values())

			if _, err := m.Index(2); err != nil {
				fmt.Fprintf(out, "m.Index(2) -> %v\n", err)
			}
			return nil
		},
	}
}
