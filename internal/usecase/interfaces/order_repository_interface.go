package interfaces

import (
	"context"
	"time"

	"entregaswoo/internal/domain/entities"
)

// OrderListFilter narrows order listings. StoreIDs is mandatory for
// courier/manager views (their active associations) and is the resolved
// active-store id set for admins. Paging is page-based with a fixed size;
// implementations report hasMore when a full page was returned.
type OrderListFilter struct {
	StoreIDs []string
	Statuses []entities.TransportStatus
	// Optional payment filters for the manager's delivered view.
	StatusPagamento   *bool
	FreteJaProcessado *bool
	Page              int
	PageSize          int
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Conditional updates follow the repository convention of this codebase:
// a ConditionalCheckFailed is not an error, it returns a zero-value Order
// so the use case can translate "zero rows matched" into its own sentinel
// (stale accept, locked freight, already processed).
type IOrderRepository interface {
	Insert(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)

	// AcceptPending sets status=aceito and stamps the acceptance fields,
	// conditioned on the row still being pending at update time. This is
	// the system's only concurrency-control primitive.
	AcceptPending(ctx context.Context, id string, by entities.Acceptance) (entities.Order, error)

	// MarkDelivered moves aceito -> entregue. A non-empty courierUID adds
	// the ownership condition (couriers deliver only their own orders).
	MarkDelivered(ctx context.Context, id string, courierUID string) (entities.Order, error)

	// Revert re-opens an accepted or delivered order, clearing the
	// acceptance fields and keeping the prior status in ultimo_status.
	Revert(ctx context.Context, id string) (entities.Order, error)

	// UpdateFreight edits frete_pago, conditioned on the payout still
	// being unlocked (not processed, no payment date).
	UpdateFreight(ctx context.Context, id string, value float64) (entities.Order, error)

	// CommitPayment marks one order paid/processed, conditioned on it not
	// having been processed already.
	CommitPayment(ctx context.Context, id string, paymentDate time.Time, freight float64) (entities.Order, error)

	List(ctx context.Context, f OrderListFilter) ([]entities.Order, bool, error)
	ListDeliveredByCourier(ctx context.Context, courierUID string, page, pageSize int) ([]entities.Order, bool, error)
}
