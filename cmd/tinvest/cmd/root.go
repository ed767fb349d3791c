// Package cmd implements the tinvest command tree.
package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juev/tinvest/config"
	"github.com/juev/tinvest/journal"
	"github.com/juev/tinvest/logging"
	"github.com/juev/tinvest/openapi"
)

// rootOptions holds the persistent flags and what PersistentPreRunE builds
// from them.
type rootOptions struct {
	configPath string
	token      string
	sandbox    bool
	baseURL    string
	account    string
	logLevel   string
	journalDB  string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd builds a fresh command tree. Each call is independent, which
// lets tests run commands side by side.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tinvest",
		Short: "Tinkoff Invest OpenAPI command line client",
		Long: `tinvest talks to the Tinkoff Invest OpenAPI (REST v1).

Settings come from, lowest to highest precedence: built-in defaults, the
--config file, .env, TINVEST_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "path to YAML or JSON config file")
	pf.StringVar(&o.token, "token", "", "API token (prefer TINVEST_TOKEN)")
	pf.BoolVar(&o.sandbox, "sandbox", false, "use the sandbox environment")
	pf.StringVar(&o.baseURL, "base-url", "", "override the API base URL")
	pf.StringVar(&o.account, "account", "", "broker account id (default account when empty)")
	pf.StringVar(&o.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&o.journalDB, "journal-db", "", "SQLite order journal; empty string disables journaling")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return o.load(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if o.log != nil {
			_ = o.log.Sync()
		}
	}

	cmd.AddCommand(
		newInstrumentCmd(o),
		newMarketCmd(o),
		newCandlesCmd(o),
		newOrderBookCmd(o),
		newOperationsCmd(o),
		newPortfolioCmd(o),
		newOrdersCmd(o),
		newAccountsCmd(o),
		newJournalCmd(o),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath, ".env")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.API.Token = o.token
	}
	if flags.Changed("sandbox") {
		cfg.API.Sandbox = o.sandbox
	}
	if flags.Changed("base-url") {
		cfg.API.BaseURL = o.baseURL
	}
	if flags.Changed("account") {
		cfg.Account = o.account
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("journal-db") {
		cfg.Journal.DBPath = o.journalDB
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = log
	return nil
}

func (o *rootOptions) client() (*openapi.Client, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, _ := o.cfg.API.TimeoutDuration()

	opts := []openapi.Option{openapi.WithLogger(o.log)}
	if timeout > 0 {
		opts = append(opts, openapi.WithTimeout(timeout))
	}
	if o.cfg.API.BaseURL != "" {
		opts = append(opts, openapi.WithBaseURL(o.cfg.API.BaseURL))
	}
	if o.cfg.API.Sandbox {
		return openapi.NewSandboxClient(o.cfg.API.Token, opts...)
	}
	return openapi.NewClient(o.cfg.API.Token, opts...)
}

func (o *rootOptions) brokerAccount() openapi.BrokerAccount {
	return openapi.Account(o.cfg.Account)
}

// openJournal returns nil when journaling is disabled.
func (o *rootOptions) openJournal() (*journal.SQLite, error) {
	if o.cfg.Journal.DBPath == "" {
		return nil, nil
	}
	j, err := journal.NewSQLite(o.cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseTime accepts RFC 3339 timestamps and YYYY-MM-DD dates in local time.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// period resolves --from/--to flags. to defaults to now, from to a week
// before to.
func period(from, to string) (time.Time, time.Time, error) {
	end := time.Now()
	if to != "" {
		t, err := parseTime(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = t
	}
	start := end.AddDate(0, 0, -7)
	if from != "" {
		t, err := parseTime(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = t
	}
	return start, end, nil
}
