package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hospital-replica-sync/cmd/bootstrap"
	"hospital-replica-sync/internal/domain/entity"

	"github.com/spf13/cobra"
)

var (
	syncTable  string
	syncCutoff string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync and print its summary",
	Example: `  replica-sync sync --table departments --cutoff 2025-01-01
  replica-sync sync --table consultations --cutoff 2025-06-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		result := app.SyncUsecase.Sync(cmd.Context(), syncTable, syncCutoff)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}

		if !result.Success {
			return errors.New(result.Message)
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(&syncTable, "table", "",
		fmt.Sprintf("table to sync (%s)", strings.Join(entity.TableNames(), ", ")))
	syncCmd.Flags().StringVar(&syncCutoff, "cutoff", "", "only records newer than this date (YYYY-MM-DD)")
	_ = syncCmd.MarkFlagRequired("table")
	_ = syncCmd.MarkFlagRequired("cutoff")
}
