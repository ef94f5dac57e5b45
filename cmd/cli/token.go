package cli

import (
	"fmt"

	"hospital-replica-sync/cmd/bootstrap"
	"hospital-replica-sync/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token allowed to trigger sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap.Load()
		if err != nil {
			return err
		}

		jwtService := jwt.NewJWTService(cfg.Auth)
		token, tokenID, err := jwtService.GenerateSyncToken(tokenSubject)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"subject":  tokenSubject,
			"token_id": tokenID,
			"expiry":   jwtService.GetTokenExpiry().String(),
		}).Info("Sync token issued")

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "scheduler", "subject recorded in the token")
}
