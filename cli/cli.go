package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"simpleui/apperr"
	"simpleui/config"
	"simpleui/definition"
	"simpleui/logging"
	"simpleui/ui"
)

// NewCommand wraps a demo program in a root command. Flag parsing is
// disabled so standard toolkit arguments pass through unmodified.
func NewCommand(p ui.Program, short string) *cobra.Command {
	return &cobra.Command{
		Use:                p.Name + " [toolkit arguments]",
		Short:              short,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(p, args)
		},
	}
}

func run(p ui.Program, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := ui.ApplyToolkitArgs(args, os.Setenv); err != nil {
		return err
	}
	if err := ui.CheckDisplay(runtime.GOOS, os.Getenv); err != nil {
		logger.Error("toolkit backend unavailable", zap.Error(err))
		return err
	}

	def, err := definition.Load(p.Name, cfg.Definitions)
	if err != nil {
		logger.Error("window definition", zap.Error(err))
		return err
	}

	logger.Debug("starting",
		zap.String("program", p.Name),
		zap.String("app_id", cfg.AppID),
		zap.Strings("args", args),
	)
	return ui.New(cfg.AppID, logger).Run(p, def)
}

// HandleError prints err for the user.
func HandleError(w io.Writer, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		fmt.Fprintf(w, "Error (%s): %s\n", appErr.Type, appErr.Message)
		if appErr.Details != "" {
			fmt.Fprintf(w, "Details: %s\n", appErr.Details)
		}
		if appErr.Cause != nil {
			fmt.Fprintf(w, "Cause: %s\n", appErr.Cause)
		}
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

// Main runs the command and returns the process exit status.
func Main(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		HandleError(os.Stderr, err)
		return apperr.ExitCode(err)
	}
	return 0
}
