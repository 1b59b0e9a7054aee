package store

import (
	"context"
	"errors"
	"fmt"

	"graphql-bff-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite keeps the dataset in a SQLite file. Using glebarez/sqlite, a pure
// Go driver, so no CGO is required.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path, migrates the
// schema and seeds the fixture rows. Rows are only inserted when absent, so
// reopening an existing file is cheap.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}

	for _, u := range Fixtures() {
		if err := db.Where(models.User{ID: u.ID}).FirstOrCreate(&u).Error; err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	return &SQLite{db: db}, nil
}

// GetUser implements UserStore.
func (s *SQLite) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user %s: %w", id, err)
	}
	return &u, nil
}

var _ UserStore = (*SQLite)(nil)
