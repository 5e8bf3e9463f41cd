package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/breedview/breeds/internal/app"
	"github.com/breedview/breeds/internal/config"
	"github.com/breedview/breeds/internal/logging"
	"github.com/breedview/breeds/internal/notify"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "breeds: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	prefsPath  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "breeds",
		Short: "Browse dog breeds from the Dog CEO API",
		Long: `breeds is a terminal gallery for the Dog CEO API.

Run without arguments to start the interactive gallery. Subcommands search,
list and download images, and manage your liked breeds from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: opts.configPath,
				PrefsPath:  opts.prefsPath,
				Verbose:    opts.verbose,
			})
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/breeds/config.toml)")
	root.PersistentFlags().StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/breeds/prefs.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newListCmd(opts),
		newSearchCmd(opts),
		newRandomCmd(opts),
		newLikedCmd(opts),
		newLikeCmd(opts),
		newUnlikeCmd(opts),
		newDownloadCmd(opts),
		newLogsCmd(opts),
	)
	return root
}

// services loads config and builds the object graph for a one-shot command.
// Notifications are printed to the command's stderr.
func services(cmd *cobra.Command, opts *rootOptions) (*app.Services, func(), error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: opts.verbose})
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.Build(cfg, logger.With(zap.String("command", cmd.Name())), stderrNotifier(cmd.ErrOrStderr()))
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return svc, func() { _ = logger.Sync() }, nil
}

func stderrNotifier(w io.Writer) notify.Notifier {
	return notify.NotifierFunc(func(n notify.Notification) {
		if n.Level == notify.Info {
			return
		}
		fmt.Fprintf(w, "%s: %s\n", n.Level, n.Message)
	})
}
