package postgres

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/azmath1924/go-rest-starter/internal/config"
	"github.com/azmath1924/go-rest-starter/internal/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Connect opens a gorm handle over the configured PostgreSQL database and
// applies the connection pool settings to the underlying sql.DB. The
// connection is verified with a ping before it is returned.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		// Have gorm surface unique violations as gorm.ErrDuplicatedKey so
		// the store can classify them without driver-specific checks.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Sync brings the schema up to date. In development and test the schema is
// synced directly from the domain models; in production the embedded goose
// migrations are the only mechanism allowed to touch the schema.
func Sync(db *gorm.DB, autoMigrate bool) error {
	if autoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			return fmt.Errorf("schema auto-migration failed: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection pool: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
