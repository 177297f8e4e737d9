package names

import (
	"time"

	"github.com/ethanbaker/names/pkg/names"
)

// NameModel represents the database model for stored names
type NameModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Value     string    `gorm:"column:value;not null;size:100"`
	CreatedAt time.Time `gorm:"column:created_at;not null;precision:3;index"`
}

// TableName sets the table name for GORM
func (NameModel) TableName() string {
	return "names"
}

// toName converts a database row to a domain name
func (m *NameModel) toName() names.Name {
	return names.Name{
		ID:        m.ID,
		Value:     m.Value,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
