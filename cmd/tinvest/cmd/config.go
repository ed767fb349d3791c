package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juev/tinvest/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage configuration files.

Examples:
  tinvest config init -o tinvest.yaml
  tinvest config validate -f tinvest.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", output)
			fmt.Fprintln(cmd.OutOrStdout(), "Set api.token or TINVEST_TOKEN before use.")
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "tinvest.yaml", "output config file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration valid: %s\n", path)
			fmt.Fprintf(out, "  Token:   %s\n", cfg.MaskedToken())
			fmt.Fprintf(out, "  Sandbox: %t\n", cfg.API.Sandbox)
			if cfg.API.BaseURL != "" {
				fmt.Fprintf(out, "  BaseURL: %s\n", cfg.API.BaseURL)
			}
			fmt.Fprintf(out, "  Journal: %s\n", cfg.Journal.DBPath)
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&path, "file", "f", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("file")

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}

const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tinvest version %s\n", version)
		},
	}
}
