package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// AccountAggregateRoot extends BaseAggregateRoot with account (tenant) scoping.
// Every record read or written by this service is scoped to the account that
// owns the warehouse, so repositories never leak rows across accounts.
type AccountAggregateRoot struct {
	BaseAggregateRoot
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewAccountAggregateRoot creates a new account-scoped aggregate root
func NewAccountAggregateRoot(accountID uuid.UUID) AccountAggregateRoot {
	return AccountAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		AccountID:         accountID,
	}
}
