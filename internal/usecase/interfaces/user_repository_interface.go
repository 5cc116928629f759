package interfaces

import (
	"context"

	"entregaswoo/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for the usuarios profile
// table. Rows are created by the sign-up flow outside this service.
type IUserRepository interface {
	GetByUID(ctx context.Context, uid string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	UpdateProfile(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, uid string) error
}
