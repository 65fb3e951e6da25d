package infra

import (
	"fmt"
	"io/fs"
	"sort"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	MaxOpenConns int
}

func NewPostgresConnection(cfg PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// RunMigrations executes every .sql file in fsys in lexical order inside one transaction.
func RunMigrations(db *gorm.DB, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("RunMigrations: %w", err)
	}
	sort.Strings(names)
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			content, e := fs.ReadFile(fsys, name)
			if e != nil {
				return fmt.Errorf("RunMigrations read %s: %w", name, e)
			}
			if e = tx.Exec(string(content)).Error; e != nil {
				return fmt.Errorf("RunMigrations apply %s: %w", name, e)
			}
		}
		return nil
	})
}
