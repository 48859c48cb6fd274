package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stsysd/dpsapi/db"
	"github.com/stsysd/dpsapi/store"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// runMigrate はストアを開いてマイグレーションを適用し、適用後のバージョンを表示します。
func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, cfg.DBFile, db.Migrate)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	defer sqliteStore.Close()

	version, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("migrations applied",
		zap.String("data_dir", cfg.DataDir),
		zap.String("db_file", cfg.DBFile),
		zap.Int64("version", version))
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
