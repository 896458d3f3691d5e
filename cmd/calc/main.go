// Package main provides the CLI interface for calc.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sivchari/calc/internal/config"
	"github.com/sivchari/calc/internal/report"
	"github.com/sivchari/calc/pkg/calc"
)

const version = "0.1.0"

type options struct {
	configFile string
	verbose    bool
	format     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Integer arithmetic from the command line",
		Long: `calc adds and subtracts integers.

Results wrap around on overflow, following Go's signed integer arithmetic.
Use -- before negative operands: calc subtract -- 0 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is .calc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "output format (text, json)")

	c := calc.New()

	rootCmd.AddCommand(
		newOperationCmd(report.OpAdd, "Print the sum of two integers", c.Add, opts),
		newOperationCmd(report.OpSubtract, "Print the difference of two integers", c.Subtract, opts),
		newVersionCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func newOperationCmd(op report.Operation, short string, fn func(a, b int) int, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     string(op) + " <a> <b>",
		Short:   short,
		Example: fmt.Sprintf("  calc %s 2 3\n  calc %s -- -1 -1", op, op),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

			a, err := parseOperand("a", args[0])
			if err != nil {
				return err
			}

			b, err := parseOperand("b", args[1])
			if err != nil {
				return err
			}

			logger.Printf("Running %s on %d and %d", op, a, b)

			result := report.Result{
				Operation: op,
				A:         a,
				B:         b,
				Value:     fn(a, b),
			}

			if err := report.New(cfg).Write(cmd.OutOrStdout(), result); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			logger.Printf("Wrote %s result", cfg.Output.Format)

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calc version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage calc configuration",
		Long:  "Commands for managing calc configuration files",
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new calc configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			filename := config.DefaultFile

			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
			}

			if err := config.Default().Save(filename); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", filename)

			return nil
		},
	}
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")

	configValidateCmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := ""
			if len(args) > 0 {
				configFile = args[0]
			}

			cfg, err := config.Load(configFile)
			if err == nil {
				err = cfg.Validate()
			}

			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "❌ Configuration validation failed: %v\n", err)

				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration is valid")

			return nil
		},
	}

	configCmd.AddCommand(configInitCmd, configValidateCmd)

	return configCmd
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.verbose {
		cfg.Verbose = true
	}

	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseOperand(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %s %q: %w", name, s, err)
	}

	return n, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}

	return log.New(w, "calc: ", log.LstdFlags)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
