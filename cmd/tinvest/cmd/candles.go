package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/domain"
	"github.com/juev/tinvest/export"
)

func newCandlesCmd(o *rootOptions) *cobra.Command {
	var (
		interval string
		from, to string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "candles <figi>",
		Short: "Fetch historical candles",
		Long: `Fetch candles of one instrument in [from, to).

Examples:
  tinvest candles BBG000B9XRY4 --interval day --from 2024-01-01 --to 2024-02-01
  tinvest candles BBG000B9XRY4 --interval hour --out aapl.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := domain.ParseCandleInterval(interval)
			if err != nil {
				return err
			}
			start, end, err := period(from, to)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}

			candles, err := c.Candles(cmd.Context(), start, end, iv, args[0])
			if err != nil {
				return fmt.Errorf("candles %s: %w", args[0], err)
			}
			if out == "" {
				return printJSON(cmd, candles)
			}
			return writeCSV(cmd, out, func(w io.Writer) (int, error) {
				return export.WriteCandlesCSV(w, candles)
			})
		},
	}

	cmd.Flags().StringVarP(&interval, "interval", "i", string(domain.Interval1Day), "candle interval: "+intervalNames())
	cmd.Flags().StringVar(&from, "from", "", "start, RFC 3339 or YYYY-MM-DD (default: a week before --to)")
	cmd.Flags().StringVar(&to, "to", "", "end, RFC 3339 or YYYY-MM-DD (default: now)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write CSV to this file instead of JSON to stdout")
	return cmd
}

func intervalNames() string {
	ivs := domain.CandleIntervals()
	names := make([]string, len(ivs))
	for i, iv := range ivs {
		names[i] = string(iv)
	}
	return strings.Join(names, "|")
}

func writeCSV(cmd *cobra.Command, path string, write func(io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", n, path)
	return nil
}
