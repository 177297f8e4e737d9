package names

import (
	"context"
	"fmt"
	"time"

	"github.com/ethanbaker/names/pkg/names"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ names.StoreInterface = (*Store)(nil)

// Store handles storage and retrieval of names using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new names store with a MySQL connection and migrates its table
func NewStore(databaseURL string, opts Options) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	store := NewStoreFromDB(db)

	// Auto-migrate tables
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// NewStoreFromDB wraps an existing GORM connection without migrating
func NewStoreFromDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the names table
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&NameModel{})
}

// Save inserts a new name and returns it with its assigned ID
func (s *Store) Save(ctx context.Context, value string, createdAt time.Time) (names.Name, error) {
	model := &NameModel{
		Value:     value,
		CreatedAt: createdAt,
	}

	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		return names.Name{}, names.NewStorageError("save", fmt.Errorf("failed to create name: %w", err))
	}

	return model.toName(), nil
}

// List returns every stored name, newest first
func (s *Store) List(ctx context.Context) ([]names.Name, error) {
	var models []NameModel
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, names.NewStorageError("list", fmt.Errorf("failed to list names: %w", err))
	}

	list := make([]names.Name, len(models))
	for i := range models {
		list[i] = models[i].toName()
	}

	return list, nil
}

// Count returns the number of stored names
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&NameModel{}).Count(&count).Error; err != nil {
		return 0, names.NewStorageError("count", fmt.Errorf("failed to count names: %w", err))
	}

	return count, nil
}

// Ping runs a trivial query to check connectivity
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return names.NewStorageError("ping", err)
	}
	return nil
}

// TableExists reports whether the names table answers a count query
func (s *Store) TableExists(ctx context.Context) bool {
	_, err := s.Count(ctx)
	return err == nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
