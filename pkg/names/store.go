package names

import (
	"context"
	"time"
)

// StoreInterface defines the persistence operations for names
type StoreInterface interface {
	// Save inserts a new name and returns it with its assigned ID
	Save(ctx context.Context, value string, createdAt time.Time) (Name, error)

	// List returns every stored name, newest first
	List(ctx context.Context) ([]Name, error)

	// Count returns the number of stored names
	Count(ctx context.Context) (int64, error)

	// Ping runs a trivial query against the store
	Ping(ctx context.Context) error

	// TableExists reports whether the names table answers queries
	TableExists(ctx context.Context) bool

	Close() error
}

// CheckHealth probes the store and summarizes the result
func CheckHealth(ctx context.Context, store StoreInterface) HealthStatus {
	if err := store.Ping(ctx); err != nil {
		return HealthStatus{
			Status:   "error",
			Database: "disconnected",
			Error:    err.Error(),
		}
	}

	return HealthStatus{
		Status:      "ok",
		Database:    "connected",
		TableExists: store.TableExists(ctx),
	}
}
