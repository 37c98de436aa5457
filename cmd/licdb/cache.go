// ABOUTME: Cache command for inspecting and invalidating the response cache.
// ABOUTME: Invalidation is explicit; entries otherwise only age out via TTL.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			fmt.Println("Cache disabled (--no-cache).")
			return nil
		}

		count, err := store.Len()
		if err != nil {
			return fmt.Errorf("read cache: %w", err)
		}

		fmt.Printf("Entries: %d\n", count)
		fmt.Printf("TTL:     %s\n", cfg.CacheTTL())
		fmt.Printf("Path:    %s\n", cacheDir)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [url]",
	Short: "Clear the cache, or invalidate a single cached URL",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return fmt.Errorf("cache disabled (--no-cache)")
		}

		if len(args) == 1 {
			if err := store.Invalidate(args[0]); err != nil {
				return fmt.Errorf("invalidate: %w", err)
			}
			fmt.Println(ui.Success("Invalidated " + args[0]))
			return nil
		}

		if err := store.Reset(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Println(ui.Success("Cache cleared"))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
