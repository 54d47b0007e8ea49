package main

import (
	"context"
	"fmt"

	"msme-carbon/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the sender indicator schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMigrationRunner(cmd.Context(), func(runner *database.MigrationRunner) error {
				if err := runner.RollbackMigrations(steps); err != nil {
					return err
				}
				a.logger.Info("rolled back migrations", "steps", steps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withMigrationRunner(cmd.Context(), func(runner *database.MigrationRunner) error {
					if err := runner.WaitForDatabase(cmd.Context()); err != nil {
						return err
					}
					return runner.RunMigrations()
				})
			},
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withMigrationRunner(cmd.Context(), func(runner *database.MigrationRunner) error {
					status, err := runner.Status()
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), status)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load the seed sender indicators",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.cfg.Database.SeedDatabase = true
				return a.withMigrationRunner(cmd.Context(), func(runner *database.MigrationRunner) error {
					loaded, err := runner.LoadSeeds(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "loaded %d seed files\n", loaded)
					return nil
				})
			},
		},
	)
	return cmd
}

func (a *app) withMigrationRunner(ctx context.Context, fn func(runner *database.MigrationRunner) error) error {
	db, err := database.New(ctx, &a.cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB(db, a.logger)

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return fn(database.NewMigrationRunnerFromConfig(sqlDB, &a.cfg.Database))
}
