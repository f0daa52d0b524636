package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithItems(t *testing.T, number string, items ...OrderItem) *Order {
	t.Helper()
	order := newTestOrder(t, number, StatusPending, "")
	for _, item := range items {
		require.NoError(t, order.AddItem(item.SKU, item.Name, item.Quantity, item.Location))
	}
	return order
}

func TestConsolidate_SharedSKUAcrossOrders(t *testing.T) {
	// Three orders each containing TSH-001 with quantities 2, 3 and 1.
	orders := []*Order{
		orderWithItems(t, "SO-001", OrderItem{SKU: "TSH-001", Name: "T-Shirt", Quantity: 2, Location: "A-01"}),
		orderWithItems(t, "SO-002", OrderItem{SKU: "TSH-001", Name: "T-Shirt", Quantity: 3, Location: "A-01"}),
		orderWithItems(t, "SO-003", OrderItem{SKU: "TSH-001", Name: "T-Shirt", Quantity: 1, Location: "A-01"}),
	}

	items := Consolidate(orders)
	require.Len(t, items, 1)
	assert.Equal(t, "TSH-001", items[0].SKU)
	assert.Equal(t, 6, items[0].TotalQuantity)
	require.Len(t, items[0].Orders, 3)
	assert.Equal(t, "SO-001", items[0].Orders[0].OrderNumber)
	assert.Equal(t, 2, items[0].Orders[0].Quantity)
	assert.Equal(t, "SO-002", items[0].Orders[1].OrderNumber)
	assert.Equal(t, 3, items[0].Orders[1].Quantity)
	assert.Equal(t, "SO-003", items[0].Orders[2].OrderNumber)
	assert.Equal(t, 1, items[0].Orders[2].Quantity)
}

func TestConsolidate_RepeatedSKUWithinOneOrder(t *testing.T) {
	// The same SKU twice in one order yields a single contribution entry
	// with the quantities summed.
	order := orderWithItems(t, "SO-010",
		OrderItem{SKU: "MUG-01", Name: "Mug", Quantity: 2, Location: "B-02"},
		OrderItem{SKU: "MUG-01", Name: "Mug", Quantity: 5, Location: "B-02"},
	)

	items := Consolidate([]*Order{order})
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].TotalQuantity)
	require.Len(t, items[0].Orders, 1)
	assert.Equal(t, 7, items[0].Orders[0].Quantity)
}

func TestConsolidate_SortsByLocationMissingFirst(t *testing.T) {
	orders := []*Order{
		orderWithItems(t, "SO-020",
			OrderItem{SKU: "C-SKU", Name: "Gamma", Quantity: 1, Location: "C-09"},
			OrderItem{SKU: "NOLOC", Name: "Unbinned", Quantity: 1, Location: ""},
			OrderItem{SKU: "A-SKU", Name: "Alpha", Quantity: 1, Location: "A-01"},
		),
	}

	items := Consolidate(orders)
	require.Len(t, items, 3)
	assert.Equal(t, "NOLOC", items[0].SKU, "missing location sorts first")
	assert.Equal(t, "A-SKU", items[1].SKU)
	assert.Equal(t, "C-SKU", items[2].SKU)
}

func TestConsolidate_LocationTiesKeepInsertionOrder(t *testing.T) {
	orders := []*Order{
		orderWithItems(t, "SO-030",
			OrderItem{SKU: "FIRST", Name: "First", Quantity: 1, Location: "D-04"},
			OrderItem{SKU: "SECOND", Name: "Second", Quantity: 1, Location: "D-04"},
		),
	}

	items := Consolidate(orders)
	require.Len(t, items, 2)
	assert.Equal(t, "FIRST", items[0].SKU)
	assert.Equal(t, "SECOND", items[1].SKU)
}

func TestConsolidate_SkipsInvalidItems(t *testing.T) {
	order := newTestOrder(t, "SO-040", StatusPending, "")
	// Bypass AddItem validation to simulate a gappy channel import.
	order.Items = []OrderItem{
		{SKU: "", Name: "No SKU", Quantity: 3, Location: "A-01"},
		{SKU: "OK-01", Name: "Fine", Quantity: 0, Location: "A-02"},
		{SKU: "OK-02", Name: "Kept", Quantity: 2, Location: "A-03"},
	}

	items := Consolidate([]*Order{order})
	require.Len(t, items, 1)
	assert.Equal(t, "OK-02", items[0].SKU)
	assert.Equal(t, 2, items[0].TotalQuantity)
}

func TestConsolidate_DoesNotFabricateLocations(t *testing.T) {
	order := orderWithItems(t, "SO-050", OrderItem{SKU: "X-01", Name: "X", Quantity: 1})

	items := Consolidate([]*Order{order})
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Location)
}

func TestConsolidate_QuantityConservation(t *testing.T) {
	orders := []*Order{
		orderWithItems(t, "SO-060",
			OrderItem{SKU: "A", Name: "A", Quantity: 2, Location: "A-01"},
			OrderItem{SKU: "B", Name: "B", Quantity: 4, Location: "B-01"},
		),
		orderWithItems(t, "SO-061",
			OrderItem{SKU: "B", Name: "B", Quantity: 1, Location: "B-01"},
			OrderItem{SKU: "C", Name: "C", Quantity: 6, Location: "C-01"},
		),
	}

	input := 0
	for _, order := range orders {
		for _, item := range order.Items {
			input += item.Quantity
		}
	}

	items := Consolidate(orders)
	assert.Equal(t, input, TotalUnits(items), "no quantity lost or invented")

	for _, item := range items {
		contributed := 0
		for _, c := range item.Orders {
			contributed += c.Quantity
		}
		assert.Equal(t, item.TotalQuantity, contributed)
	}
}

func TestConsolidate_Deterministic(t *testing.T) {
	orders := []*Order{
		orderWithItems(t, "SO-070",
			OrderItem{SKU: "A", Name: "A", Quantity: 1, Location: "Z-01"},
			OrderItem{SKU: "B", Name: "B", Quantity: 2, Location: "A-01"},
		),
		orderWithItems(t, "SO-071",
			OrderItem{SKU: "A", Name: "A", Quantity: 3, Location: "Z-01"},
		),
	}

	first := Consolidate(orders)
	second := Consolidate(orders)
	assert.Equal(t, first, second)
}

func TestConsolidate_EmptyInput(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
	assert.Empty(t, Consolidate([]*Order{}))
}
