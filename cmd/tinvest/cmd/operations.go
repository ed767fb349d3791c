package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/export"
)

func newOperationsCmd(o *rootOptions) *cobra.Command {
	var (
		from, to string
		figi     string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List account operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period(from, to)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}

			ops, err := c.Operations(cmd.Context(), o.brokerAccount(), start, end, figi)
			if err != nil {
				return fmt.Errorf("operations: %w", err)
			}
			if out == "" {
				return printJSON(cmd, ops)
			}
			return writeCSV(cmd, out, func(w io.Writer) (int, error) {
				return export.WriteOperationsCSV(w, ops)
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start, RFC 3339 or YYYY-MM-DD (default: a week before --to)")
	cmd.Flags().StringVar(&to, "to", "", "end, RFC 3339 or YYYY-MM-DD (default: now)")
	cmd.Flags().StringVar(&figi, "figi", "", "restrict to one instrument")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write CSV to this file instead of JSON to stdout")
	return cmd
}
