package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nowledge-app/chatwise-import/internal/config"
	"github.com/nowledge-app/chatwise-import/internal/mem"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config and Nowledge Mem connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  API base: %s\n", cfg.APIBase)
			fmt.Printf("  Timeout:  %s\n", cfg.Timeout())
			checkConfigFile()

			fmt.Println("\n=== Nowledge Mem ===")
			client := mem.NewClient(cfg.APIBase, cfg.Timeout())
			threads, err := client.ListThreads(cmd.Context())
			if err != nil {
				fmt.Printf("  Status: %v\n", err)
				return nil
			}
			fmt.Println("  Status: OK")
			fmt.Printf("  Threads: %d\n", len(threads))

			return nil
		},
	}
}

func checkConfigFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".config", "cwimport", "config.toml")
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  File:     %s (not found, using defaults)\n", path)
	} else {
		fmt.Printf("  File:     %s (OK)\n", path)
	}
}
