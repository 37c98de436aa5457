// ABOUTME: Root command wiring config, response cache, and API client.
// ABOUTME: Shared state for subcommands lives here.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/cache"
	"github.com/hamidahoderinwale/licences-db/internal/config"
	"github.com/hamidahoderinwale/licences-db/internal/dataset"
	"github.com/hamidahoderinwale/licences-db/internal/spdxapi"
)

var (
	cfg      *config.Config
	store    *cache.Cache
	cacheDir string
	client   *spdxapi.Client
	builder  *dataset.Builder
)

var rootCmd = &cobra.Command{
	Use:     "licdb",
	Short:   "Build datasets of SPDX licence and exception metadata",
	Long:    `licdb fetches licence metadata from the SPDX License List and the FSF metadata API, parses identifiers into family/version/modifier, classifies GPL compatibility, and writes tabular datasets in several formats.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		opts := []spdxapi.Option{}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		if timeout > 0 {
			opts = append(opts, spdxapi.WithTimeout(timeout))
		}

		noCache, _ := cmd.Flags().GetBool("no-cache")
		if !noCache {
			cacheDir, _ = cmd.Flags().GetString("cache-dir")
			if cacheDir == "" {
				cacheDir = config.CacheDir()
			}
			store, err = cache.Open(cacheDir, cfg.CacheTTL())
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			opts = append(opts, spdxapi.WithStore(store))
		}

		client = spdxapi.New(cfg, opts...)
		builder = dataset.NewBuilder(client)
		builder.Progress = func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			_ = store.Close()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the response cache")
	rootCmd.PersistentFlags().String("cache-dir", "", "response cache directory (default: XDG cache dir)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "per-request timeout")
	rootCmd.SilenceUsage = true
}
