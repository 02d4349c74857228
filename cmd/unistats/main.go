package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/unistats/pkg/config"
	"github.com/yurifrl/unistats/pkg/service"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "unistats",
	Short:         "Build the weekly interview report from the activity log",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the report to stdout and reports/<yyyy-mm-dd>.txt",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show which log rows are kept or dropped by the allow-lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		processor, _, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		outcomes, err := processor.Inspect()
		if err != nil {
			return err
		}

		dump, _ := cmd.Flags().GetBool("dump")
		if dump {
			return dumpOutcomes(cmd.OutOrStdout(), outcomes)
		}
		printOutcomes(cmd.OutOrStdout(), outcomes)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the aggregated counts as YAML without writing a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		processor, formats, err := newProcessor(cmd)
		if err != nil {
			return err
		}

		result, err := processor.Generate()
		if err != nil {
			return err
		}

		out := struct {
			LogDate    string `yaml:"log_date"`
			ReportDate string `yaml:"report_date"`
			Summary    any    `yaml:"summary"`
		}{
			LogDate:    result.Dates.Log.Format(formats.FileDate),
			ReportDate: result.Dates.FileBase(),
			Summary:    result.Summary,
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		return enc.Close()
	},
}

func runReport(cmd *cobra.Command, _ []string) error {
	processor, _, err := newProcessor(cmd)
	if err != nil {
		return err
	}
	_, err = processor.Run(cmd.OutOrStdout())
	return err
}

func newProcessor(cmd *cobra.Command) (*service.Processor, config.Formats, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, config.Formats{}, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, config.Formats{}, err
	}
	logger.Debug("configuration loaded", "document", cfg.DocumentPath, "officers", cfg.OfficersPath, "actions", cfg.ActionsPath, "reports_dir", cfg.ReportsDir)

	formats := config.DefaultFormats()
	return service.NewProcessor(cfg, formats, logger), formats, nil
}

func newLogger(level string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "unistats",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
		return logger, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./unistats.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().String("document", config.DefaultDocumentPath, "Activity log HTML export")
	rootCmd.PersistentFlags().String("officers", config.DefaultOfficersPath, "Officer allow-list, one per line")
	rootCmd.PersistentFlags().String("actions", config.DefaultActionsPath, "Action allow-list, one per line")
	rootCmd.PersistentFlags().String("reports-dir", config.DefaultReportsDir, "Directory for dated report files")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	inspectCmd.Flags().Bool("dump", false, "Pretty print the raw row outcomes")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("unistats failed", "error", err)
		os.Exit(1)
	}
}
