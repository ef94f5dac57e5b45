package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "replica-sync",
	Short: "Replicates departments, physicians and consultations from the source API",
	Long: `replica-sync keeps a local PostgreSQL replica in step with the source API.
It serves a read API over the replica and pulls records newer than a cutoff
date on demand, inserting the ones the replica does not have yet.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, syncCmd, migrateCmd, tokenCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
