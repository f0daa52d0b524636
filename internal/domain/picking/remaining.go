package picking

import "github.com/shipdesk/backend/internal/domain/fulfillment"

// RemainingToPick derives how many units are still to be pulled for a picking
// run: the unit total of the orders that need picking, minus the units of
// every consolidated row whose SKU has been marked picked.
//
// Stale picked SKUs that no longer appear in the consolidated rows are
// ignored, and the result is clamped at zero so a stale consolidation
// snapshot can never report negative work.
func RemainingToPick(totalUnits int, items []fulfillment.ConsolidatedItem, state *State) int {
	if state == nil {
		if totalUnits < 0 {
			return 0
		}
		return totalUnits
	}

	picked := 0
	for _, item := range items {
		if state.IsPicked(item.SKU) {
			picked += item.TotalQuantity
		}
	}

	remaining := totalUnits - picked
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TotalUnitsToPick sums the unit counts of the orders offered for picking
func TotalUnitsToPick(orders []*fulfillment.Order) int {
	total := 0
	for _, order := range orders {
		if order != nil {
			total += order.UnitCount()
		}
	}
	return total
}
