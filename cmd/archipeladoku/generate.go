package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galdiuz/archipeladoku/generate"
)

func init() {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the per-player snapshots as JSON",
		Long: `Run the generation pass for every player and print their snapshots.

Examples:
  archipeladoku generate
  archipeladoku generate --options player.yaml --seed 42
  archipeladoku generate -p 3 -v`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	rootCmd.AddCommand(genCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctxs, err := contexts()
	if err != nil {
		return err
	}
	results, err := generate.RunAll(cmd.Context(), ctxs)
	if err != nil {
		return err
	}

	snaps := make(map[string]generate.Snapshot, len(results))
	for _, r := range results {
		snaps[fmt.Sprint(r.Player)] = r.Snapshot
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(snaps)
}
