// Package migrate provides the cobra commands for schema migrations.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"patchbay/internal/infrastructure/config"
	"patchbay/internal/infrastructure/database"
	"patchbay/internal/infrastructure/migration"
	"patchbay/internal/shared/constants"
	"patchbay/internal/shared/logger"
)

const scriptsPath = "./internal/infrastructure/migration/scripts"

// NewCommand creates the migrate command with up and down subcommands.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "environment (development, test, production)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := openDatabase(env)
			if err != nil {
				return err
			}
			defer cleanup()

			manager := migration.NewManager(env)
			if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			fmt.Println("migrations applied")
			return nil
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := openDatabase(env)
			if err != nil {
				return err
			}
			defer cleanup()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath)
			golangMigrate, ok := strategy.(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("rollback requires the golang-migrate strategy")
			}
			if err := golangMigrate.MigrateDown(db, steps); err != nil {
				return fmt.Errorf("roll back migrations: %w", err)
			}
			fmt.Println("migrations rolled back")
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back (0 rolls back everything)")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := openDatabase(env)
			if err != nil {
				return err
			}
			defer cleanup()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath)
			golangMigrate, ok := strategy.(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("status requires the golang-migrate strategy")
			}
			version, dirty, err := golangMigrate.Status(db)
			if err != nil {
				return fmt.Errorf("read migration status: %w", err)
			}
			fmt.Printf("version: %d\ndirty: %t\n", version, dirty)
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new pair of migration script files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			upPath, downPath, err := createScripts(scriptsPath, args[0])
			if err != nil {
				return fmt.Errorf("create migration scripts: %w", err)
			}
			fmt.Println(upPath)
			fmt.Println(downPath)
			return nil
		},
	}

	cmd.AddCommand(up, down, status, create)
	return cmd
}

// createScripts writes an empty up/down script pair with the next sequence
// number in the scripts directory.
func createScripts(dir, name string) (upPath, downPath string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", err
	}

	seq := 0
	for _, entry := range entries {
		var n int
		if _, err := fmt.Sscanf(entry.Name(), "%d_", &n); err == nil && n > seq {
			seq = n
		}
	}

	prefix := fmt.Sprintf("%06d_%s", seq+1, name)
	upPath = filepath.Join(dir, prefix+".up.sql")
	downPath = filepath.Join(dir, prefix+".down.sql")

	for _, path := range []string{upPath, downPath} {
		if err := os.WriteFile(path, []byte("-- Migration: "+name+"\n"), 0o644); err != nil {
			return "", "", err
		}
	}
	return upPath, downPath, nil
}

func openDatabase(env string) (db *gorm.DB, cleanup func(), err error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("init database: %w", err)
	}

	cleanup = func() {
		_ = database.Close()
	}
	return database.Get(), cleanup, nil
}
