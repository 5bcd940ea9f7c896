package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/internal/cli"
	apperrors "github.com/matzehuels/forcelayout/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report prints err for the user and returns the process exit code:
// 130 after an interrupt, 2 for bad input and 1 otherwise.
func report(w io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}

	code := apperrors.GetCode(err)
	if code == "" {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "Error [%s]: %s\n", code, apperrors.UserMessage(err))

	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidConfig,
		apperrors.ErrCodeInvalidGraph, apperrors.ErrCodeInvalidLayout,
		apperrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging (per-step diagnostics)")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
