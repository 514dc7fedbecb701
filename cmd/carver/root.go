package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/seamcarving/carver"
	"github.com/seamcarving/carver/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
│  ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image resize by seam carving.
    Version: %s
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

func newRootCmd() *cobra.Command {
	cfg := newConfig()

	cmd := &cobra.Command{
		Use:           "carver",
		Short:         "Content aware image resize",
		Long:          fmt.Sprintf(helpBanner, Version),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.load(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	cfg.bindFlags(cmd.Flags())

	return cmd
}

// run resizes the configured source and reports the outcome.
func run(ctx context.Context, cfg *config) error {
	if cfg.Width == 0 && cfg.Height == 0 && !cfg.Mark {
		return errors.New("please provide a width, height or percentage for image rescaling")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(level)

	proc := &carver.Processor{
		NewWidth:   cfg.Width,
		NewHeight:  cfg.Height,
		Percentage: cfg.Percentage,
		Scale:      cfg.Scale,
		Mark:       cfg.Mark,
		SeamColor:  cfg.Color,
		Logger:     logger,
	}
	op := &carver.Ops{
		Src:      cfg.In,
		Dst:      cfg.Out,
		PipeName: pipeName,
		Workers:  cfg.Workers,
	}

	if !cfg.Verbose && term.IsTerminal(int(os.Stderr.Fd())) {
		op.Spinner = newSpinner(os.Stderr)
		defer op.Spinner.RestoreCursor()
	}

	logger.Debug("configuration", "in", cfg.In, "out", cfg.Out, "width", cfg.Width,
		"height", cfg.Height, "perc", cfg.Percentage, "workers", cfg.Workers)

	return proc.Execute(ctx, op)
}

// newSpinner returns the progress indicator shown while a single image is resized.
func newSpinner(w io.Writer) *utils.Spinner {
	msg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARVER", utils.StatusMessage),
		utils.DecorateText("⇢ resizing image (be patient, it may take a while)...", utils.DefaultMessage),
	)
	s := utils.NewSpinner(w, msg, 80*time.Millisecond, true)
	s.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("⚡ CARVER", utils.StatusMessage),
		utils.DecorateText("⇢ the image has been resized ✔", utils.SuccessMessage),
	)
	return s
}

// errorText formats a failed run for the terminal.
func errorText(err error) string {
	return fmt.Sprintf("%s %s",
		utils.DecorateText("Error resizing the image:", utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}

// newLogger creates the stderr logger shared by the processor and the CLI.
func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "carver",
	})
}
