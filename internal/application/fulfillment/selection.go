package fulfillment

import (
	"sort"

	"github.com/google/uuid"
)

// Selection is the dashboard's view state: the two "select all" checkboxes
// and the set of manually or derivedly selected orders. Every mutation goes
// through a named action so the checkboxes and the selection set can never
// contradict each other. The zero value is unusable; use NewSelection.
type Selection struct {
	ShowOrdersToShip bool
	ShowItemsToPick  bool
	selected         map[uuid.UUID]struct{}
}

// NewSelection creates an empty selection with both checkboxes off
func NewSelection() *Selection {
	return &Selection{selected: make(map[uuid.UUID]struct{})}
}

// SetShowOrdersToShip drives the "orders to ship" checkbox. Checking it
// replaces the selection with the derived to-ship set and releases the
// other checkbox; unchecking clears the selection.
func (s *Selection) SetShowOrdersToShip(on bool, toShip []uuid.UUID) {
	s.ShowOrdersToShip = on
	s.ShowItemsToPick = false
	s.replace(nil)
	if on {
		s.replace(toShip)
	}
}

// SetShowItemsToPick drives the "items to pick" checkbox. Checking it
// replaces the selection with the derived pickable set and releases the
// other checkbox; unchecking clears the selection.
func (s *Selection) SetShowItemsToPick(on bool, pickable []uuid.UUID) {
	s.ShowItemsToPick = on
	s.ShowOrdersToShip = false
	s.replace(nil)
	if on {
		s.replace(pickable)
	}
}

// ToggleOrderSelection flips one order in or out of the selection. A manual
// toggle means the selection no longer equals a derived set, so both
// checkboxes are released.
func (s *Selection) ToggleOrderSelection(orderID uuid.UUID) bool {
	s.ShowOrdersToShip = false
	s.ShowItemsToPick = false
	if _, ok := s.selected[orderID]; ok {
		delete(s.selected, orderID)
		return false
	}
	s.selected[orderID] = struct{}{}
	return true
}

// ClearSelection unchecks both checkboxes and empties the selection
func (s *Selection) ClearSelection() {
	s.ShowOrdersToShip = false
	s.ShowItemsToPick = false
	s.replace(nil)
}

// ApplyRemaining reacts to a progress update. When nothing is left to pick
// the "items to pick" checkbox resets itself and drops its derived
// selection; it reports whether a reset happened.
func (s *Selection) ApplyRemaining(remaining int) bool {
	if remaining > 0 || !s.ShowItemsToPick {
		return false
	}
	s.ShowItemsToPick = false
	s.replace(nil)
	return true
}

// IsSelected reports whether an order is currently selected
func (s *Selection) IsSelected(orderID uuid.UUID) bool {
	_, ok := s.selected[orderID]
	return ok
}

// SelectedOrderIDs returns the selected orders in a deterministic order
func (s *Selection) SelectedOrderIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (s *Selection) replace(ids []uuid.UUID) {
	s.selected = make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}
