package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ticketboard/internal/infrastructure/config"
	"ticketboard/internal/infrastructure/database"
	"ticketboard/internal/infrastructure/migration"
	"ticketboard/internal/infrastructure/persistence/seeds"
	"ticketboard/internal/shared/constants"
	"ticketboard/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded SQL migrations, and seed the demo user directory.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  withDatabase(runDown),
	}
	downCmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending migrations",
			RunE:  withDatabase(runUp),
		},
		downCmd,
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			RunE:  withDatabase(runStatus),
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert demo users when the user table is empty",
			RunE:  withDatabase(runSeed),
		},
	)

	return cmd
}

type dbCommand func(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error

// withDatabase loads config, logging and the database before running fn.
func withDatabase(fn dbCommand) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(env)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log := logger.NewLogger().Named("migrate")

		if err := database.Init(&cfg.Database); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.Close()

		strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
		if err != nil {
			return err
		}
		return fn(database.Get(), strategy, log)
	}
}

func runUp(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
	log.Infow("running up migrations", "environment", env)
	if err := strategy.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Infow("migrations completed successfully")
	return nil
}

func runDown(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := strategy.MigrateDown(db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}
	return nil
}

func runStatus(db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
	version, err := strategy.GetVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	return strategy.Status(db)
}

func runSeed(db *gorm.DB, _ *migration.GooseStrategy, log logger.Interface) error {
	n, err := seeds.SeedDemoUsers(db)
	if err != nil {
		return err
	}
	log.Infow("seeded demo users", "count", n)
	fmt.Printf("Inserted %d users\n", n)
	return nil
}
