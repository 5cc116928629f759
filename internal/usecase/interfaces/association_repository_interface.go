package interfaces

import (
	"context"

	"entregaswoo/internal/domain/entities"
)

// IAssociationRepository abstracts DynamoDB persistence for the
// loja_associada join table.
type IAssociationRepository interface {
	Create(ctx context.Context, a entities.StoreAssociation) (entities.StoreAssociation, error)
	ListActiveByUser(ctx context.Context, uid string) ([]entities.StoreAssociation, error)
	// ListActiveByStore filters by role when funcao is non-empty.
	ListActiveByStore(ctx context.Context, storeID string, funcao entities.StoreRole) ([]entities.StoreAssociation, error)
	// ListActiveUserIDs returns the uid set appearing in any active
	// association; pending users are computed by subtracting it from the
	// full user list.
	ListActiveUserIDs(ctx context.Context) ([]string, error)
}
