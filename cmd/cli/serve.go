package cli

import (
	"hospital-replica-sync/cmd/bootstrap"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize application with all dependencies
		app, err := bootstrap.New(cmd.Context())
		if err != nil {
			return err
		}

		app.Run()
		return nil
	},
}
