package health

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ethanbaker/names/internal/metrics"
	"github.com/ethanbaker/names/pkg/names"
)

const MONITOR_PROBE_TIMEOUT = 5 * time.Second

// Monitor periodically probes the store and publishes the result as metrics
type Monitor struct {
	store names.StoreInterface

	mu   sync.Mutex
	last *names.HealthStatus
}

// NewMonitor creates a monitor for the given store
func NewMonitor(store names.StoreInterface) *Monitor {
	return &Monitor{store: store}
}

// Run performs one probe. It is safe to call from a cron job
func (m *Monitor) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), MONITOR_PROBE_TIMEOUT)
	defer cancel()

	status := names.CheckHealth(ctx, m.store)
	if status.Status == "ok" {
		metrics.StoreUp.Set(1)
		if count, err := m.store.Count(ctx); err == nil {
			metrics.StoredRecords.Set(float64(count))
		}
	} else {
		metrics.StoreUp.Set(0)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Only log transitions
	if m.last == nil || m.last.Status != status.Status {
		if status.Status == "ok" {
			log.Printf("[HEALTH]: Store reachable (table exists: %t)", status.TableExists)
		} else {
			log.Printf("[HEALTH]: Store unreachable: %s", status.Error)
		}
	}
	m.last = &status
}

// Last returns the result of the most recent probe, or nil before the first run
func (m *Monitor) Last() *names.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		return nil
	}
	status := *m.last
	return &status
}
