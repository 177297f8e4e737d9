package names

import (
	"encoding/json"
	"time"
)

// MAX_VALUE_LENGTH is the longest value a stored name may have, counted in characters
const MAX_VALUE_LENGTH = 100

// Name is a single stored name. Stores hand out copies, so a Name is never changed after it is built
type Name struct {
	ID        int64     // Identifier assigned by the store on creation
	Value     string    // The submitted text (1 to 100 characters)
	CreatedAt time.Time // Creation time, UTC
}

// nameJSON is the wire format of a Name. Both 'name' and 'value' carry the value
type nameJSON struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON writes the name with both 'name' and 'value' keys
func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(nameJSON{
		ID:        n.ID,
		Name:      n.Value,
		Value:     n.Value,
		CreatedAt: n.CreatedAt.UTC(),
	})
}

// UnmarshalJSON reads a name, preferring 'value' over 'name' when both are present
func (n *Name) UnmarshalJSON(data []byte) error {
	var raw nameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.ID = raw.ID
	n.Value = raw.Value
	if n.Value == "" {
		n.Value = raw.Name
	}
	n.CreatedAt = raw.CreatedAt
	return nil
}

// HealthStatus describes the reachability of the backing store
type HealthStatus struct {
	Status      string `json:"status"`          // "ok" or "error"
	Database    string `json:"database"`        // "connected" or "disconnected"
	TableExists bool   `json:"table_exists"`    // Whether the names table answers queries
	Error       string `json:"error,omitempty"` // Failure reason when status is "error"
}
