package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juev/tinvest/domain"
	"github.com/juev/tinvest/journal"
)

func newOrdersCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List, place and cancel orders",
		Long: `List, place and cancel orders.

Placements and cancellations are recorded in the order journal unless
--journal-db is set to an empty string.

Examples:
  tinvest orders list
  tinvest orders limit BBG000B9XRY4 --lots 1 --op Buy --price 150.5
  tinvest orders market BBG000B9XRY4 --lots 2 --op Sell
  tinvest orders cancel 12345`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List live orders",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := o.client()
				if err != nil {
					return err
				}
				orders, err := c.Orders(cmd.Context(), o.brokerAccount())
				if err != nil {
					return fmt.Errorf("orders: %w", err)
				}
				return printJSON(cmd, orders)
			},
		},
		newPlaceCmd(o, journal.ActionLimitOrder),
		newPlaceCmd(o, journal.ActionMarketOrder),
		&cobra.Command{
			Use:   "cancel <order-id>",
			Short: "Cancel a live order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := o.client()
				if err != nil {
					return err
				}
				if err := c.CancelOrder(cmd.Context(), o.brokerAccount(), args[0]); err != nil {
					return fmt.Errorf("cancel %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cancelled %s\n", args[0])
				return o.record(cmd.Context(), journal.Cancelled(o.cfg.Account, args[0]))
			},
		},
	)
	return cmd
}

func newPlaceCmd(o *rootOptions, action journal.Action) *cobra.Command {
	var (
		lots  int64
		op    string
		price float64
	)

	use, short := "market <figi>", "Place a market order"
	if action == journal.ActionLimitOrder {
		use, short = "limit <figi>", "Place a limit order"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := domain.ParseOperationType(op)
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}

			figi := args[0]
			var placed domain.PlacedOrder
			if action == journal.ActionLimitOrder {
				placed, err = c.LimitOrder(cmd.Context(), o.brokerAccount(), figi, lots, side, price)
			} else {
				placed, err = c.MarketOrder(cmd.Context(), o.brokerAccount(), figi, lots, side)
			}
			if err != nil {
				return fmt.Errorf("place order: %w", err)
			}
			if err := printJSON(cmd, placed); err != nil {
				return err
			}
			return o.record(cmd.Context(), journal.Placed(action, o.cfg.Account, figi, price, placed))
		},
	}

	cmd.Flags().Int64VarP(&lots, "lots", "l", 1, "number of lots")
	cmd.Flags().StringVar(&op, "op", "", "Buy or Sell")
	_ = cmd.MarkFlagRequired("op")
	if action == journal.ActionLimitOrder {
		cmd.Flags().Float64VarP(&price, "price", "p", 0, "limit price")
		_ = cmd.MarkFlagRequired("price")
	}
	return cmd
}

// record journals an action that already reached the server.
func (o *rootOptions) record(ctx context.Context, a journal.OrderAction) error {
	j, err := o.openJournal()
	if err != nil {
		return fmt.Errorf("order sent but not journaled: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	stored, err := j.Record(ctx, a)
	if err != nil {
		return fmt.Errorf("order sent but not journaled: %w", err)
	}
	o.log.Info("journaled order action",
		zap.String("entry_id", stored.EntryID),
		zap.String("action", string(stored.Action)),
		zap.String("order_id", stored.OrderID))
	return nil
}
