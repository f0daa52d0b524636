package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shipdesk/backend/internal/domain/warehouse"
)

// SettingsColumn stores warehouse settings as a JSON column
type SettingsColumn struct {
	warehouse.Settings
}

// Value implements driver.Valuer
func (s SettingsColumn) Value() (driver.Value, error) {
	if s.OrderStatus == nil {
		return nil, nil
	}
	return json.Marshal(s.Settings)
}

// Scan implements sql.Scanner
func (s *SettingsColumn) Scan(value any) error {
	if value == nil {
		s.Settings = warehouse.Settings{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into SettingsColumn", value)
	}

	if len(data) == 0 || string(data) == "null" {
		s.Settings = warehouse.Settings{}
		return nil
	}
	return json.Unmarshal(data, &s.Settings)
}

// Warehouse is the persistence model for warehouses
type Warehouse struct {
	AccountAggregateModel
	Code                      string               `gorm:"size:20;not null;index"`
	Name                      string               `gorm:"size:200;not null"`
	Address                   valueobject.Address  `gorm:"type:jsonb"`
	ReturnAddress             *valueobject.Address `gorm:"type:jsonb"`
	UseDifferentReturnAddress bool                 `gorm:"not null;default:false"`
	Settings                  SettingsColumn       `gorm:"type:jsonb"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// FromDomain populates the model from a domain warehouse
func (m *Warehouse) FromDomain(wh *warehouse.Warehouse) {
	m.FromDomainAccountAggregateRoot(wh.AccountAggregateRoot)
	m.Code = wh.Code
	m.Name = wh.Name
	m.Address = wh.Address
	m.ReturnAddress = wh.ReturnAddress
	m.UseDifferentReturnAddress = wh.UseDifferentReturnAddress
	m.Settings = SettingsColumn{Settings: wh.Settings}
}

// ToDomain converts the model to a domain warehouse
func (m *Warehouse) ToDomain() *warehouse.Warehouse {
	wh := &warehouse.Warehouse{
		Code:                      m.Code,
		Name:                      m.Name,
		Address:                   m.Address,
		ReturnAddress:             m.ReturnAddress,
		UseDifferentReturnAddress: m.UseDifferentReturnAddress,
		Settings:                  m.Settings.Settings,
	}
	m.PopulateAccountAggregateRoot(&wh.AccountAggregateRoot)
	return wh
}
