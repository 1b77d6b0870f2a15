// Command archipeladoku generates and inspects per-player layouts, unlock
// orders and access graphs.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	optionsFile string
	seed        int64
	players     int
	verbose     bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:           "archipeladoku",
	Short:         "Lay out overlapping boards and schedule their unlock order",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		log.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&optionsFile, "options", "o", "", "YAML option file (defaults when empty)")
	rootCmd.PersistentFlags().Int64VarP(&seed, "seed", "s", 1, "Generation seed")
	rootCmd.PersistentFlags().IntVarP(&players, "players", "p", 1, "Number of players sharing the options")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every pipeline stage")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("archipeladoku failed")
		os.Exit(1)
	}
}
