package warehouse

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the warehouse store collaborator
type Repository interface {
	FindByID(ctx context.Context, accountID, id uuid.UUID) (*Warehouse, error)
	FindByCode(ctx context.Context, accountID uuid.UUID, code string) (*Warehouse, error)
	FindAll(ctx context.Context, accountID uuid.UUID) ([]*Warehouse, error)
	Save(ctx context.Context, w *Warehouse) error
	Delete(ctx context.Context, accountID, id uuid.UUID) error
}
