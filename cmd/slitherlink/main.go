package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "slitherlink",
		Short: "slitherlink",
		Long:  `A CLI tool to load and solve Slitherlink puzzles.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newSolveCmd())

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging and CEGAR rejection tracing")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
