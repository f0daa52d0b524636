package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps shared by every entity.
// Timestamps are kept in UTC; rows travel between warehouses in different
// time zones.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity generates a fresh identity with both timestamps set to now.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// Touch records a modification.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}
