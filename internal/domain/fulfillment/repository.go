package fulfillment

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository is the order store collaborator. Reads return snapshots in
// a stable order (oldest first, then order number) so the limiter prefix is
// deterministic across calls.
type OrderRepository interface {
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*Order, error)
	FindByWarehouse(ctx context.Context, accountID, warehouseID uuid.UUID) ([]*Order, error)
	UpdateStatus(ctx context.Context, accountID, id uuid.UUID, field, value string) error
	Save(ctx context.Context, order *Order) error
}
