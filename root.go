package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose       bool
	flagStore     string
	flagStorePath string
	ephemeral     bool
)

var rootCmd = &cobra.Command{
	Use:   "happycap",
	Short: "A journaling canvas that locks your entries until a future date",
	Long: `Happy Capsule lets you draw, import images and write text on a canvas,
then lock a snapshot of it as a capsule that opens on a date you choose.

Run without arguments to open the canvas.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := &slog.HandlerOptions{
			Level: logLevel(),
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, kv, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer kv.Close()
		return runInteractive(ctx, cfg, kv)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Store backend: file, redis, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "Directory (file) or database path (sqlite) of the store")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep capsules in memory only")
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// openStore loads the configuration, applies command line overrides and opens
// the configured backend.
func openStore(ctx context.Context) (*Config, KV, error) {
	cfg := loadConfig()
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagStorePath != "" {
		cfg.StorePath = expandPath(flagStorePath)
	}
	if ephemeral {
		cfg.Store = "memory"
	}
	kv, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("store opened", "backend", cfg.Store, "path", cfg.StorePath)
	return cfg, kv, nil
}
