package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/unitgo/catalog"
)

func newUnitsCmd(a *app) *cobra.Command {
	var convertible string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the units in the catalog",
		Example: `  unitconv units
  unitconv units --convertible km/h --unicode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := a.engine.Registry().Entries()
			if convertible != "" {
				ref, err := a.engine.Unit(convertible)
				if err != nil {
					return err
				}
				entries = filter(entries, func(e catalog.Entry) bool {
					return e.Unit.Convertible(ref)
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOL\tNAME\tDIMENSION\tSCALE\tOFFSET")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g\n",
					e.Display(a.cfg.Output.Unicode), e.Name, dimensionOf(e), e.Unit.Scale(), e.Unit.Offset())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&convertible, "convertible", "", "only list units convertible to this unit")
	cmd.Flags().Bool("unicode", false, "show unicode symbols where available")
	a.bind(cmd, map[string]string{"output.unicode": "unicode"})

	return cmd
}

func dimensionOf(e catalog.Entry) string {
	if e.Unit.IsScalar() {
		return "1"
	}
	return e.Unit.Dimension().String()
}

func filter(entries []catalog.Entry, keep func(catalog.Entry) bool) []catalog.Entry {
	out := entries[:0]
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
