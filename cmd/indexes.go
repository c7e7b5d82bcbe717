package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var indexesCmd = &cobra.Command{
	Use:   "ensure-indexes",
	Short: "Create the store indexes (unique user email, menu category, cart owner)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		if rt.config.Database.Driver == driverMemory {
			return fmt.Errorf("ensure-indexes needs a document store, DB_DRIVER is %q", driverMemory)
		}
		if err := rt.openStore(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := rt.ensureIndexes(ctx); err != nil {
			return err
		}

		rt.logger.Info("Indexes ensured", zap.String("database", rt.config.Database.Name))
		return nil
	},
}
