package interfaces

import (
	"context"

	"entregaswoo/internal/domain/entities"
)

// IStoreRepository abstracts DynamoDB persistence for Store.
type IStoreRepository interface {
	Create(ctx context.Context, s entities.Store) (entities.Store, error)
	Update(ctx context.Context, s entities.Store) (entities.Store, error)
	GetByID(ctx context.Context, id string) (entities.Store, error)
	// List returns all stores; activeOnly keeps only ativa=true. The
	// admin order view depends on the active id set.
	List(ctx context.Context, activeOnly bool) ([]entities.Store, error)
}
