package warehouse

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
)

// Settings holds the per-warehouse dashboard configuration.
// OrderStatus is nil until the operator configures rules; consumers go
// through FulfillmentRules so the documented defaults apply transparently.
type Settings struct {
	OrderStatus *fulfillment.Rules `json:"orderStatusSettings,omitempty"`
}

// Warehouse is the aggregate root for a physical fulfillment location
type Warehouse struct {
	shared.AccountAggregateRoot
	Code                      string
	Name                      string
	Address                   valueobject.Address
	ReturnAddress             *valueobject.Address
	UseDifferentReturnAddress bool
	Settings                  Settings
}

// NewWarehouse creates a new warehouse
func NewWarehouse(accountID uuid.UUID, code, name string, address valueobject.Address) (*Warehouse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Warehouse code cannot be empty")
	}
	if len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_CODE", "Warehouse code cannot exceed 20 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	if address.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Warehouse address cannot be empty")
	}

	return &Warehouse{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		Code:                 code,
		Name:                 name,
		Address:              address,
	}, nil
}

// FulfillmentRules returns the configured rules, or the documented defaults
// when none are configured. Never fails on a missing configuration.
func (w *Warehouse) FulfillmentRules() fulfillment.Rules {
	return fulfillment.EffectiveRules(w.Settings.OrderStatus)
}

// UpdateRules replaces the configured fulfillment rules. Overlapping rule
// sets are rejected so a conflict cannot be persisted.
func (w *Warehouse) UpdateRules(rules fulfillment.Rules) error {
	if err := rules.Validate(); err != nil {
		return err
	}
	w.Settings.OrderStatus = &rules
	w.Touch()
	return nil
}

// ClearRules removes the configured rules so the defaults apply again
func (w *Warehouse) ClearRules() {
	w.Settings.OrderStatus = nil
	w.Touch()
}

// SetReturnAddress configures the override return address. Passing an empty
// address removes the override.
func (w *Warehouse) SetReturnAddress(address valueobject.Address, useDifferent bool) {
	if address.IsEmpty() {
		w.ReturnAddress = nil
		w.UseDifferentReturnAddress = false
	} else {
		w.ReturnAddress = &address
		w.UseDifferentReturnAddress = useDifferent
	}
	w.Touch()
}

// Rename updates the display name
func (w *Warehouse) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	w.Name = name
	w.Touch()
	return nil
}
