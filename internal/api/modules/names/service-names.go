package names_module

import (
	"fmt"
	"log"

	names_store "github.com/ethanbaker/names/internal/stores/names"
	"github.com/ethanbaker/names/pkg/names"
	"github.com/ethanbaker/names/pkg/utils"
)

// NewService creates the names service, backed by MySQL when a database is configured
// and by an in-memory store otherwise
func NewService(cfg *utils.Config) (*names.Service, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	return names.NewService(store), nil
}

// newStore is a helper function that picks the store implementation from the config
func newStore(cfg *utils.Config) (names.StoreInterface, error) {
	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		log.Println("[NAMES]: Warning, MYSQL_DATABASE not set, using in-memory store (data will not persist across restarts)")
		return names_store.NewInMemoryStore(), nil
	}

	// Load pool options
	opts := names_store.DefaultOptions()
	if path := cfg.Get("STORE_CONFIG_PATH"); path != "" {
		loaded, err := names_store.LoadOptions(path)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	store, err := names_store.NewStore(dsn, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create names store: %w", err)
	}

	log.Println("[NAMES]: Connected to MySQL store")
	return store, nil
}
