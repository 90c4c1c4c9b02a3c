// Address-copier shows the Housing Hope developments sheet as a list of
// properties with one-click copy buttons for each address field.
//
// Usage:
//
//	address-copier [flags]
//
// The sheet is looked up next to the executable first, then in the current
// directory. The process exits with status 1 if it cannot be found.
package main

import (
	"fmt"
	"io"
	"os"

	"address-copier/internal/app"
	"address-copier/internal/config"
	"address-copier/internal/logger"
	"address-copier/internal/shutdown"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:           "address-copier",
		Short:         "Copy development addresses to the clipboard",
		Version:       app.AppVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.CSVFile, "csv", cfg.CSVFile, "sheet file name, resolved next to the executable then in the working directory")
	flags.StringVar(&cfg.MissingValue, "missing", cfg.MissingValue, "text used for empty or absent cells")
	flags.StringVar(&cfg.Clipboard, "clipboard", cfg.Clipboard, "clipboard backend: system or fyne")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&cfg.JSONLogs, "json-logs", cfg.JSONLogs, "write JSON log lines instead of console format")
	flags.Float32Var(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	flags.Float32Var(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "address-copier %s\n", app.AppVersion)
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(level, cfg.JSONLogs)

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		return err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	err = application.Run()
	shutdownManager.Shutdown()

	return err
}
