package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AccountAggregateModel provides common persistence fields for account-scoped
// aggregate roots: identity, timestamps, optimistic-lock version, account ID.
type AccountAggregateModel struct {
	BaseModel
	Version   int       `gorm:"not null;default:1"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainAccountAggregateRoot populates the model from a domain aggregate root
func (m *AccountAggregateModel) FromDomainAccountAggregateRoot(a shared.AccountAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
	m.AccountID = a.AccountID
}

// PopulateAccountAggregateRoot populates a domain aggregate root from the model
func (m *AccountAggregateModel) PopulateAccountAggregateRoot(a *shared.AccountAggregateRoot) {
	a.BaseEntity.ID = m.ID
	a.BaseEntity.CreatedAt = m.CreatedAt
	a.BaseEntity.UpdatedAt = m.UpdatedAt
	a.Version = m.Version
	a.AccountID = m.AccountID
}
