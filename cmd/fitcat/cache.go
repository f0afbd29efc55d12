package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
	"fitcatalog/pkg/cache"
)

func cacheStore() *cache.FileStore {
	cfg := bootstrap.LoadConfig()
	dir := cfg.CacheDir
	if dir == "" {
		dir = cache.DefaultDir()
	}
	return cache.NewFileStore(dir)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the persisted catalog snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		store := cacheStore()
		fmt.Printf("path: %s\n", store.Path())

		snap, ok := store.Load()
		if !ok {
			fmt.Println("no snapshot")
			return
		}

		cfg := bootstrap.LoadConfig()
		age := time.Since(snap.Timestamp).Round(time.Second)
		fmt.Printf("rows: %d\n", len(snap.Items))
		fmt.Printf("fetched: %s (%s ago)\n", snap.Timestamp.Format("2006-01-02 15:04:05"), age)
		if snap.Fresh(time.Now(), cfg.CacheTTL) {
			fmt.Println("freshness: fresh")
		} else {
			fmt.Println("freshness: stale")
		}
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := cacheStore()
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Printf("cleared %s\n", store.Path())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
