package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/domain"
	"github.com/juev/tinvest/openapi"
)

func newInstrumentCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument",
		Short: "Look up instruments by FIGI or ticker",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "figi <figi>",
			Short: "Show the instrument with the given FIGI",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := o.client()
				if err != nil {
					return err
				}
				inst, err := c.InstrumentByFIGI(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("instrument %s: %w", args[0], err)
				}
				return printJSON(cmd, inst)
			},
		},
		&cobra.Command{
			Use:   "ticker <ticker>",
			Short: "List instruments traded under a ticker",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := o.client()
				if err != nil {
					return err
				}
				list, err := c.InstrumentByTicker(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("ticker %s: %w", args[0], err)
				}
				return printJSON(cmd, list)
			},
		},
	)
	return cmd
}

func newMarketCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "List tradable instruments by kind",
	}

	lists := []struct {
		use  string
		list func(*openapi.Client, context.Context) ([]domain.Instrument, error)
	}{
		{"stocks", (*openapi.Client).Stocks},
		{"bonds", (*openapi.Client).Bonds},
		{"etfs", (*openapi.Client).ETFs},
		{"currencies", (*openapi.Client).Currencies},
	}
	for _, l := range lists {
		cmd.AddCommand(&cobra.Command{
			Use:   l.use,
			Short: "List " + l.use,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := o.client()
				if err != nil {
					return err
				}
				list, err := l.list(c, cmd.Context())
				if err != nil {
					return fmt.Errorf("%s: %w", l.use, err)
				}
				return printJSON(cmd, list)
			},
		})
	}
	return cmd
}

func newOrderBookCmd(o *rootOptions) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "orderbook <figi>",
		Short: "Show an order book snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !openapi.ValidDepth(depth) {
				return fmt.Errorf("depth must be between 1 and %d", openapi.MaxOrderBookDepth)
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			ob, err := c.OrderBook(cmd.Context(), depth, args[0])
			if err != nil {
				return fmt.Errorf("orderbook %s: %w", args[0], err)
			}
			return printJSON(cmd, ob)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 10, "number of price levels per side")
	return cmd
}
