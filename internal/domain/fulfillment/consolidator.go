package fulfillment

import (
	"sort"

	"github.com/google/uuid"
)

// OrderContribution records how many units of a SKU a single order
// contributes to a consolidated pick-list row.
type OrderContribution struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Quantity    int       `json:"quantity"`
}

// ConsolidatedItem is one pick-list row: all units of a SKU across the capped
// order set, with the per-order breakdown the packer needs afterwards.
// TotalQuantity always equals the sum of the contribution quantities.
type ConsolidatedItem struct {
	SKU           string              `json:"sku"`
	Name          string              `json:"name"`
	TotalQuantity int                 `json:"totalQuantity"`
	Location      string              `json:"location"`
	Orders        []OrderContribution `json:"orders"`
}

// Consolidate merges the line items of an order set into one row per SKU.
//
// Orders are visited in input order. Within one order, quantities of the same
// SKU are summed first so each order contributes at most one entry per row.
// Items with a missing SKU or non-positive quantity are skipped; they must not
// abort consolidation of the rest. Name and location are taken from the first
// occurrence of the SKU and never synthesized when absent.
//
// The result is sorted ascending by location, items without a location first,
// with ties broken by insertion order so output is identical on every call.
func Consolidate(orders []*Order) []ConsolidatedItem {
	index := make(map[string]int)
	items := make([]ConsolidatedItem, 0)

	for _, order := range orders {
		if order == nil || !order.HasItems() {
			continue
		}

		// Sum per-SKU quantities within the order, keeping first-seen order.
		skus := make([]string, 0, len(order.Items))
		quantities := make(map[string]int, len(order.Items))
		first := make(map[string]OrderItem, len(order.Items))
		for _, item := range order.Items {
			if item.SKU == "" || item.Quantity <= 0 {
				continue
			}
			if _, seen := quantities[item.SKU]; !seen {
				skus = append(skus, item.SKU)
				first[item.SKU] = item
			}
			quantities[item.SKU] += item.Quantity
		}

		for _, sku := range skus {
			quantity := quantities[sku]
			pos, exists := index[sku]
			if !exists {
				pos = len(items)
				index[sku] = pos
				items = append(items, ConsolidatedItem{
					SKU:      sku,
					Name:     first[sku].Name,
					Location: first[sku].Location,
					Orders:   make([]OrderContribution, 0, 1),
				})
			}
			items[pos].TotalQuantity += quantity
			items[pos].Orders = append(items[pos].Orders, OrderContribution{
				OrderID:     order.ID,
				OrderNumber: order.OrderNumber,
				Quantity:    quantity,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Location < items[j].Location
	})
	return items
}

// TotalUnits returns the total number of units across all consolidated rows
func TotalUnits(items []ConsolidatedItem) int {
	total := 0
	for _, item := range items {
		total += item.TotalQuantity
	}
	return total
}
