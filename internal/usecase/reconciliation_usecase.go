package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptySelection      = errors.New("no orders selected")
	ErrMissingPaymentDate  = errors.New("payment date is required")
	ErrFreightLocked       = errors.New("freight already processed and locked")
	ErrInvalidFreightValue = errors.New("freight value must not be negative")
)

// MissingFreightError rejects a batch containing orders without a positive
// payout, enumerating the offending ids so the operator can fix them.
type MissingFreightError struct {
	OrderIDs []string
}

func (e *MissingFreightError) Error() string {
	return fmt.Sprintf("orders without a positive freight value: %s", strings.Join(e.OrderIDs, ", "))
}

// BatchRequest selects delivered orders and one payment date for them all.
type BatchRequest struct {
	OrderIDs    []string
	PaymentDate time.Time
}

type BatchLine struct {
	OrderID   string  `json:"order_id"`
	IDLojaWoo string  `json:"id_loja_woo"`
	FretePago float64 `json:"frete_pago"`
}

// BatchSummary is the confirmation step shown before commit: per-order
// payout and the grand total. Nothing has been written when it renders.
type BatchSummary struct {
	Lines []BatchLine `json:"lines"`
	Total float64     `json:"total"`
}

type OrderCommitResult struct {
	OrderID string `json:"order_id"`
	Error   string `json:"error,omitempty"`
}

// BatchResult reports the commit per order. The batch is not atomic across
// rows: one row failing never rolls back or hides the rows that succeeded.
type BatchResult struct {
	Committed []string            `json:"committed"`
	Failed    []OrderCommitResult `json:"failed,omitempty"`
	Total     float64             `json:"total"`
}

// IReconciliationUseCase is the manager-side batch payment workflow.

type IReconciliationUseCase interface {
	UpdateFreight(ctx context.Context, sess Session, orderID string, value float64) (entities.Order, error)
	Validate(ctx context.Context, sess Session, req BatchRequest) (BatchSummary, error)
	Commit(ctx context.Context, sess Session, req BatchRequest) (BatchResult, error)
}

type ReconciliationUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(orders interfaces.IOrderRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{orders: orders}
}

// UpdateFreight edits one order's payout while it is still unlocked. The
// value is normalized to two decimals; the repository repeats the lock rule
// as an update condition, so a stale client cannot slip past the view.
func (u *ReconciliationUseCase) UpdateFreight(ctx context.Context, sess Session, orderID string, value float64) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if value < 0 {
		return entities.Order{}, ErrInvalidFreightValue
	}
	value = roundCurrency(value)

	if err := u.checkVisibility(ctx, sess, orderID); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.orders.UpdateFreight(ctx, orderID, value)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		existing, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if existing.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, ErrFreightLocked
	}
	return updated, nil
}

// Validate runs the three batch checks in order (empty selection, missing
// date, non-positive payouts) and, only when all pass, returns the
// confirmation summary. No rows are touched.
func (u *ReconciliationUseCase) Validate(ctx context.Context, sess Session, req BatchRequest) (BatchSummary, error) {
	if len(req.OrderIDs) == 0 {
		return BatchSummary{}, ErrEmptySelection
	}
	if req.PaymentDate.IsZero() {
		return BatchSummary{}, ErrMissingPaymentDate
	}

	orders, err := u.loadBatch(ctx, sess, req.OrderIDs)
	if err != nil {
		return BatchSummary{}, err
	}

	var missing []string
	summary := BatchSummary{Lines: make([]BatchLine, 0, len(orders))}
	for _, o := range orders {
		if o.FretePago <= 0 {
			missing = append(missing, o.ID)
			continue
		}
		summary.Lines = append(summary.Lines, BatchLine{OrderID: o.ID, IDLojaWoo: o.IDLojaWoo, FretePago: o.FretePago})
		summary.Total += o.FretePago
	}
	if len(missing) > 0 {
		return BatchSummary{}, &MissingFreightError{OrderIDs: missing}
	}
	summary.Total = roundCurrency(summary.Total)
	return summary, nil
}

// Commit re-runs the validation and then issues one conditional update per
// order, all concurrently, awaiting every result. Each row's condition
// (not yet processed) makes a replay of a partially-failed batch safe:
// rows committed the first time fail their condition and show up in Failed.
func (u *ReconciliationUseCase) Commit(ctx context.Context, sess Session, req BatchRequest) (BatchResult, error) {
	summary, err := u.Validate(ctx, sess, req)
	if err != nil {
		return BatchResult{}, err
	}

	type outcome struct {
		orderID string
		err     error
	}

	outcomes := make([]outcome, len(summary.Lines))
	var wg sync.WaitGroup
	for i, line := range summary.Lines {
		wg.Add(1)
		go func(i int, line BatchLine) {
			defer wg.Done()
			updated, err := u.orders.CommitPayment(ctx, line.OrderID, req.PaymentDate, line.FretePago)
			if err == nil && updated.ID == "" {
				err = ErrFreightLocked
			}
			outcomes[i] = outcome{orderID: line.OrderID, err: err}
		}(i, line)
	}
	wg.Wait()

	result := BatchResult{}
	for i, oc := range outcomes {
		if oc.err != nil {
			result.Failed = append(result.Failed, OrderCommitResult{OrderID: oc.orderID, Error: oc.err.Error()})
			continue
		}
		result.Committed = append(result.Committed, oc.orderID)
		result.Total += summary.Lines[i].FretePago
	}
	result.Total = roundCurrency(result.Total)

	log.WithFields(log.Fields{
		"uid":       sess.UID,
		"committed": len(result.Committed),
		"failed":    len(result.Failed),
		"total":     result.Total,
	}).Info("reconciliation batch committed")
	return result, nil
}

func (u *ReconciliationUseCase) loadBatch(ctx context.Context, sess Session, ids []string) ([]entities.Order, error) {
	visible := map[string]bool{}
	for _, id := range sess.StoreIDs() {
		visible[id] = true
	}

	orders := make([]entities.Order, 0, len(ids))
	for _, id := range ids {
		o, err := u.orders.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if o.ID == "" {
			return nil, ErrOrderNotFound
		}
		if sess.Role != entities.RoleAdmin && !visible[o.IDLoja] {
			return nil, ErrNoStoreVisibility
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (u *ReconciliationUseCase) checkVisibility(ctx context.Context, sess Session, orderID string) error {
	if sess.Role == entities.RoleAdmin {
		return nil
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}
	for _, id := range sess.StoreIDs() {
		if id == o.IDLoja {
			return nil
		}
	}
	return ErrNoStoreVisibility
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
