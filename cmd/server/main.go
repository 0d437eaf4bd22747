package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	applog "github.com/janisto/hello-world/internal/platform/logging"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const defaultPort = 80

var errPortRange = errors.New("port must be between 1 and 65535")

func main() {
	os.Exit(execute())
}

func execute() int {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "hello-world [port]",
		Short: "Serve the hello-world greeting and health check",
		Long: `Serve GET /hello-world and GET /health_check on all interfaces.

The optional port argument defaults to 80.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				applog.SetLevel(zapcore.DebugLevel)
			}
			port, err := parsePort(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, port)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// parsePort returns the port named by the single optional argument.
func parsePort(args []string) (int, error) {
	if len(args) == 0 {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", args[0], err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q: %w", args[0], errPortRange)
	}
	return port, nil
}
