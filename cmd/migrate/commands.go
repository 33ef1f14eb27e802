package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberService/internal/config"
	"github.com/m04kA/SMC-BarberService/migrations"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Миграции схемы БД SMC-BarberService",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "путь к config.toml")

	root.AddCommand(
		newUpCmd(&configPath),
		newDownCmd(&configPath),
		newForceCmd(&configPath),
		newVersionCmd(&configPath),
	)

	return root
}

func newUpCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Применить все новые миграции",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(*configPath, func(m *migrate.Migrate, log *logger.Logger) error {
				if err := m.Up(); err != nil {
					if errors.Is(err, migrate.ErrNoChange) {
						log.Info("No new migrations")
						return nil
					}
					return fmt.Errorf("migrate up: %w", err)
				}
				log.Info("Migrations applied")
				return nil
			})
		},
	}
}

func newDownCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "down [n]",
		Short: "Откатить n миграций (по умолчанию одну)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid number of steps: %q", args[0])
				}
				steps = n
			}

			return withMigrator(*configPath, func(m *migrate.Migrate, log *logger.Logger) error {
				if err := m.Steps(-steps); err != nil {
					if errors.Is(err, migrate.ErrNoChange) {
						log.Info("Nothing to roll back")
						return nil
					}
					return fmt.Errorf("migrate down: %w", err)
				}
				log.Info("Rolled back %d migration(s)", steps)
				return nil
			})
		},
	}
}

func newForceCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Принудительно выставить версию (снимает флаг dirty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %q", args[0])
			}

			return withMigrator(*configPath, func(m *migrate.Migrate, log *logger.Logger) error {
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version: %w", err)
				}
				log.Info("Forced version to %d", version)
				return nil
			})
		},
	}
}

func newVersionCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать текущую версию схемы",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(*configPath, func(m *migrate.Migrate, log *logger.Logger) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					log.Info("No migrations applied")
					return nil
				}
				if err != nil {
					return fmt.Errorf("get version: %w", err)
				}
				log.Info("Schema version %d (dirty=%t)", version, dirty)
				return nil
			})
		},
	}
}

// withMigrator открывает БД по config.toml и передает готовый мигратор в fn
func withMigrator(configPath string, fn func(m *migrate.Migrate, log *logger.Logger) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("db driver: %w", err)
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	return fn(m, log)
}
