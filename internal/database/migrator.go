package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"msme-carbon/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
	defaultReadyAttempts  = 30
	defaultReadyInterval  = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the sender indicator schema and loads seed indicators
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seedEnabled    bool
	readyAttempts  int
	readyInterval  time.Duration
}

// MigrationStatus is the schema version recorded by golang-migrate
type MigrationStatus struct {
	Applied bool
	Version uint
	Dirty   bool
}

func (s MigrationStatus) String() string {
	if !s.Applied {
		return "no migrations applied"
	}
	return fmt.Sprintf("version %d dirty=%t", s.Version, s.Dirty)
}

// NewMigrationRunner uses the default paths with seeding off
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: defaultMigrationsPath,
		seedsPath:      defaultSeedsPath,
		readyAttempts:  defaultReadyAttempts,
		readyInterval:  defaultReadyInterval,
	}
}

// NewMigrationRunnerFromConfig overrides the defaults with every non-zero setting in cfg
func NewMigrationRunnerFromConfig(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	runner := NewMigrationRunner(db)
	if cfg.MigrationsPath != "" {
		runner.migrationsPath = cfg.MigrationsPath
	}
	if cfg.SeedsPath != "" {
		runner.seedsPath = cfg.SeedsPath
	}
	if cfg.ReadyAttempts > 0 {
		runner.readyAttempts = cfg.ReadyAttempts
	}
	if cfg.ReadyInterval > 0 {
		runner.readyInterval = cfg.ReadyInterval
	}
	runner.seedEnabled = cfg.SeedDatabase
	return runner
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.readyAttempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		slog.InfoContext(ctx, "database not ready", "attempt", attempt, "max_attempts", mr.readyAttempts, "error", lastErr)
		if attempt == mr.readyAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.readyInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.readyAttempts, lastErr)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending migration. A dirty schema is forced back to its
// recorded version first. A missing directory is logged and skipped.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if errors.Is(err, ErrMigrationsNotFound) {
		slog.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	before, err := statusOf(m)
	if err != nil {
		return err
	}
	if before.Dirty {
		slog.Warn("schema is dirty, forcing recorded version", "version", before.Version)
		if err := m.Force(int(before.Version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", before.Version, err)
		}
	}

	if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
		slog.Info("schema up to date", "status", before.String())
		return nil
	} else if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	after, err := statusOf(m)
	if err != nil {
		return err
	}
	slog.Info("applied migrations", "from", before.Version, "to", after.Version)
	return nil
}

// RollbackMigrations reverts steps migrations
func (mr *MigrationRunner) RollbackMigrations(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("rollback steps must be positive, got %d", steps)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory in name order and returns
// how many succeeded. A file that fails to execute is logged and skipped.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) (int, error) {
	if !mr.seedEnabled {
		slog.DebugContext(ctx, "seed loading disabled")
		return 0, nil
	}
	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.WarnContext(ctx, "seeds directory not found, skipping seeds", "path", mr.seedsPath)
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}

	loaded := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return loaded, fmt.Errorf("failed to read seed file %s: %w", file, err)
		}
		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			slog.WarnContext(ctx, "seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		loaded++
		slog.InfoContext(ctx, "loaded seed file", "file", filepath.Base(file))
	}
	return loaded, nil
}

// Status reports the applied schema version
func (mr *MigrationRunner) Status() (MigrationStatus, error) {
	m, err := mr.newMigrate()
	if err != nil {
		return MigrationStatus{}, err
	}
	return statusOf(m)
}

func statusOf(m *migrate.Migrate) (MigrationStatus, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("failed to read migration version: %w", err)
	}
	return MigrationStatus{Applied: true, Version: version, Dirty: dirty}, nil
}

// RunMigrationsIfEnabled waits for the database, migrates and seeds when AUTO_MIGRATE is on.
// Seed failures are logged, not returned.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		slog.DebugContext(ctx, "auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunnerFromConfig(db, cfg)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	if _, err := runner.LoadSeeds(ctx); err != nil {
		slog.WarnContext(ctx, "seed loading failed", "error", err)
	}
	return nil
}
