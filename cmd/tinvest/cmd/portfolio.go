package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/domain"
)

type portfolioView struct {
	domain.Portfolio
	ExpectedYield map[domain.Currency]string `json:"expectedYield"`
}

func newPortfolioCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show positions, cash balances and expected yield per currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			p, err := c.Portfolio(cmd.Context(), o.brokerAccount())
			if err != nil {
				return fmt.Errorf("portfolio: %w", err)
			}

			view := portfolioView{Portfolio: p, ExpectedYield: map[domain.Currency]string{}}
			for cur, y := range p.ExpectedYield() {
				view.ExpectedYield[cur] = y.StringFixed(2)
			}
			return printJSON(cmd, view)
		},
	}
}

func newAccountsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List broker accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			accts, err := c.Accounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("accounts: %w", err)
			}
			return printJSON(cmd, accts)
		},
	}
}
