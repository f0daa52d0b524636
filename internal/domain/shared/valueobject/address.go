package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a value object representing a postal address as printed on
// shipping and return labels. The Name field is the label headline and may
// carry display-name template placeholders (resolved by the warehouse domain).
type Address struct {
	Name       string `json:"name,omitempty"`
	Company    string `json:"company,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// NewAddress creates an address with the required fields validated
func NewAddress(line1, city string) (Address, error) {
	line1 = strings.TrimSpace(line1)
	city = strings.TrimSpace(city)

	if line1 == "" {
		return Address{}, fmt.Errorf("address line cannot be empty")
	}
	if len(line1) > 500 {
		return Address{}, fmt.Errorf("address line cannot exceed 500 characters")
	}
	if city == "" {
		return Address{}, fmt.Errorf("city cannot be empty")
	}
	if len(city) > 100 {
		return Address{}, fmt.Errorf("city cannot exceed 100 characters")
	}

	return Address{Line1: line1, City: city}, nil
}

// EmptyAddress returns an empty address (for optional address fields)
func EmptyAddress() Address {
	return Address{}
}

// IsEmpty returns true if the address carries no location information
func (a Address) IsEmpty() bool {
	return a.Line1 == "" && a.City == ""
}

// WithName returns a copy of the address with the given label name
func (a Address) WithName(name string) Address {
	a.Name = name
	return a
}

// OneLine returns the address formatted as a single line
func (a Address) OneLine() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Line1, a.Line2, a.City, a.Region, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Equals returns true if both addresses are field-wise equal
func (a Address) Equals(other Address) bool {
	return a == other
}

// Value implements driver.Valuer so Address can be stored as a JSON column
func (a Address) Value() (driver.Value, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *Address) Scan(value any) error {
	if value == nil {
		*a = EmptyAddress()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*a = EmptyAddress()
		return nil
	}
	return json.Unmarshal(data, a)
}
