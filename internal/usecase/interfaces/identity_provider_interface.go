package interfaces

import "context"

// IIdentityProvider abstracts the managed auth backend's admin surface.
// Used only by the best-effort user deletion: a provider failure is logged
// and does not block removing the profile row.
type IIdentityProvider interface {
	DeleteUser(ctx context.Context, uid string) error
}
