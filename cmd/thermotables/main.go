// Package main provides the CLI entry point for thermotables.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/le-nicolas/Digital-Thermo-Table/internal/config"
	"github.com/le-nicolas/Digital-Thermo-Table/internal/logging"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/output"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputPath string
	format     string
	pretty     bool
	envFile    string
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thermotables",
		Short: "Normalize thermodynamic property tables from an Excel workbook",
		Long: `thermotables reads every sheet of a property-table workbook, detects
saturation and pressure-temperature tables, and writes them as normalized
lookup tables (JSON, YAML or SQLite).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to source .xlsx/.xlsm workbook (default: $THERMO_INPUT)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the dataset (default: $THERMO_OUTPUT)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: json, yaml, sqlite (default: by extension)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file with THERMO_* settings")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	outFormat, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	opts := thermo.DefaultOptions()
	opts.Logger = logger

	ds, err := thermo.Build(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := output.Write(cfg.Output, ds, outFormat, cfg.Pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Wrote %d tables to %s\n", ds.TableCount, cfg.Output)
	return nil
}

// applyFlags lets explicitly set flags override environment settings.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = inputPath
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = pretty
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}
