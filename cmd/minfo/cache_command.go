package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Probe cache maintenance",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached probe results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			cache, err := ctx.openCache(cfg)
			if err != nil {
				return fmt.Errorf("open probe cache: %w", err)
			}
			defer cache.Close()

			entries, err := cache.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				type listed struct {
					Path      string    `json:"path"`
					Size      int64     `json:"size"`
					CreatedAt time.Time `json:"created_at"`
				}
				out := make([]listed, 0, len(entries))
				for _, entry := range entries {
					out = append(out, listed{Path: entry.Path, Size: entry.Size, CreatedAt: entry.CreatedAt})
				}
				return writeJSON(cmd, out)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Probe cache is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Path,
					strconv.FormatInt(entry.Size, 10),
					entry.CreatedAt.Local().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"PATH", "SIZE", "CACHED AT"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached probe result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			cache, err := ctx.openCache(cfg)
			if err != nil {
				return fmt.Errorf("open probe cache: %w", err)
			}
			defer cache.Close()

			if err := cache.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Probe cache cleared")
			return nil
		},
	}
}
