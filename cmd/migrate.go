package main

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/champion-league/db"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}
	for _, c := range []struct {
		command db.MigrationCommand
		short   string
	}{
		{db.MigrateUp, "Apply all pending migrations"},
		{db.MigrateDown, "Roll back all migrations"},
		{db.MigrateVersion, "Print the current schema version"},
	} {
		command := c.command
		cmd.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd, command)
			},
		})
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, command db.MigrationCommand) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	dbConn, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(dbConn, logger)

	result, err := db.Migrate(dbConn, command)
	if err != nil {
		return err
	}
	logger.Info("migration finished",
		slog.String("command", string(command)),
		slog.Uint64("version", uint64(result.Version)),
		slog.Bool("dirty", result.Dirty),
		slog.Bool("changed", result.Changed),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", result.Version, result.Dirty)
	return nil
}
