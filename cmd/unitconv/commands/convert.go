package commands

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between units",
		Long: `Convert VALUE from unit FROM to unit TO. Units are looked up by symbol
first and then by name. Temperature units with an offset, such as degC,
are converted through kelvin.`,
		Example: `  unitconv convert 1 mol/L mol/m^3
  unitconv convert 100 degC degF`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseFloat("value", args[0])
			if err != nil {
				return err
			}
			q, err := a.engine.Convert(cmd.Context(), value, args[1], args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.engine.Format(q))
			return err
		},
	}
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WithHint(
			errors.Newf("invalid %s %q", name, s),
			"use a decimal number such as 1.5 or 2e-3",
		)
	}
	return v, nil
}
