package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/measurement"
)

func newPropagateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propagate OP VALUE UNCERTAINTY UNIT VALUE UNCERTAINTY UNIT",
		Short: "Apply add, sub, mul or div to two measurements",
		Long: `Apply OP to two measurements given as value, uncertainty and unit.
Uncertainties combine in quadrature (rss) unless --model linear is set.
The result of add and sub is expressed in the unit of the first operand.`,
		Example: `  unitconv propagate add 10 0.5 m 20 1 m
  unitconv propagate div 10 0.2 m 2 0.05 s --model linear`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := unitgo.ParseOp(args[0])
			if err != nil {
				return err
			}
			x, err := a.measurement(args[1:4])
			if err != nil {
				return err
			}
			y, err := a.measurement(args[4:7])
			if err != nil {
				return err
			}
			r, err := a.engine.Propagate(cmd.Context(), op, x, y)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.engine.FormatMeasurement(r))
			return err
		},
	}

	cmd.Flags().String("model", "rss", "uncertainty model: rss or linear")
	a.bind(cmd, map[string]string{"propagation.model": "model"})

	return cmd
}

// measurement parses value, uncertainty and unit.
func (a *app) measurement(args []string) (measurement.Measurement[float64], error) {
	v, err := parseFloat("value", args[0])
	if err != nil {
		return measurement.Measurement[float64]{}, err
	}
	u, err := parseFloat("uncertainty", args[1])
	if err != nil {
		return measurement.Measurement[float64]{}, err
	}
	return a.engine.Measurement(v, u, args[2])
}
