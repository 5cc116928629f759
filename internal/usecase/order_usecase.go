package usecase

import (
	"context"
	"errors"
	"strings"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	// ErrOrderAlreadyTaken is the loser's side of the accept race: the
	// conditional update matched zero rows because another courier got
	// there first. Never a server error, never a false success.
	ErrOrderAlreadyTaken   = errors.New("order no longer available")
	ErrOrderNotDeliverable = errors.New("order is not in an accepted state")
	ErrOrderNotRevertible  = errors.New("order cannot be reverted")
	ErrNoStoreVisibility   = errors.New("user has no active store association")
	ErrInvalidStatusFilter = errors.New("invalid payment status filter")
)

// DeliveredFilter narrows the manager's delivered view by payment state:
// "" (all), "true"/"false" (status_pagamento) or "processado"
// (frete_ja_processado), mirroring the reconciliation screen's dropdown.
type DeliveredFilter string

// IOrderUseCase manages the order transport state machine and the
// role/store-scoped listings.

type IOrderUseCase interface {
	Accept(ctx context.Context, sess Session, orderID string) (entities.Order, error)
	Deliver(ctx context.Context, sess Session, orderID string) (entities.Order, error)
	Revert(ctx context.Context, sess Session, orderID string) (entities.Order, error)
	ListPending(ctx context.Context, sess Session, page int) ([]entities.Order, bool, error)
	ListDelivered(ctx context.Context, sess Session, filter DeliveredFilter, page int) ([]entities.Order, bool, error)
	ListMyDeliveries(ctx context.Context, sess Session, page int) ([]entities.Order, bool, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	stores   interfaces.IStoreRepository
	pageSize int
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, stores interfaces.IStoreRepository, pageSize int) *OrderUseCase {
	return &OrderUseCase{orders: orders, stores: stores, pageSize: pageSize}
}

// Accept transitions aguardando|revertido -> aceito, stamping the courier's
// resolved identity. The repository issues one conditional update; a zero
// result means the row was no longer pending at update time.
func (u *OrderUseCase) Accept(ctx context.Context, sess Session, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if err := u.checkVisibility(ctx, sess, orderID); err != nil {
		return entities.Order{}, err
	}

	by := acceptanceFromSession(sess)
	updated, err := u.orders.AcceptPending(ctx, orderID, by)
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
		log.WithFields(log.Fields{"order_id": orderID, "uid": sess.UID, "status": existing.StatusTransporte}).Info("accept lost the race")
		return entities.Order{}, ErrOrderAlreadyTaken
	}

	log.WithFields(log.Fields{"order_id": orderID, "uid": sess.UID}).Info("order accepted")
	return updated, nil
}

func (u *OrderUseCase) Deliver(ctx context.Context, sess Session, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	// Couriers may only deliver their own accepted orders; managers and
	// admins may close any accepted order of a visible store.
	courierUID := ""
	if sess.Role == entities.RoleEntregador {
		courierUID = sess.UID
	} else if err := u.checkVisibility(ctx, sess, orderID); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.orders.MarkDelivered(ctx, orderID, courierUID)
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
		return entities.Order{}, ErrOrderNotDeliverable
	}
	log.WithFields(log.Fields{"order_id": orderID, "uid": sess.UID}).Info("order delivered")
	return updated, nil
}

// Revert re-opens an accepted or delivered order. The acceptance fields are
// cleared so the row satisfies the pending invariant again and shows up for
// other couriers.
func (u *OrderUseCase) Revert(ctx context.Context, sess Session, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if err := u.checkVisibility(ctx, sess, orderID); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.orders.Revert(ctx, orderID)
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
		return entities.Order{}, ErrOrderNotRevertible
	}
	log.WithFields(log.Fields{"order_id": orderID, "uid": sess.UID}).Info("order reverted")
	return updated, nil
}

func (u *OrderUseCase) ListPending(ctx context.Context, sess Session, page int) ([]entities.Order, bool, error) {
	storeIDs, err := u.visibleStoreIDs(ctx, sess)
	if err != nil {
		return nil, false, err
	}
	return u.orders.List(ctx, interfaces.OrderListFilter{
		StoreIDs: storeIDs,
		Statuses: []entities.TransportStatus{entities.TransportStatusAguardando, entities.TransportStatusRevertido},
		Page:     page,
		PageSize: u.pageSize,
	})
}

func (u *OrderUseCase) ListDelivered(ctx context.Context, sess Session, filter DeliveredFilter, page int) ([]entities.Order, bool, error) {
	storeIDs, err := u.visibleStoreIDs(ctx, sess)
	if err != nil {
		return nil, false, err
	}

	f := interfaces.OrderListFilter{
		StoreIDs: storeIDs,
		Statuses: []entities.TransportStatus{entities.TransportStatusEntregue},
		Page:     page,
		PageSize: u.pageSize,
	}
	switch filter {
	case "":
	case "processado":
		v := true
		f.FreteJaProcessado = &v
	case "true", "false":
		v := filter == "true"
		f.StatusPagamento = &v
	default:
		return nil, false, ErrInvalidStatusFilter
	}
	return u.orders.List(ctx, f)
}

func (u *OrderUseCase) ListMyDeliveries(ctx context.Context, sess Session, page int) ([]entities.Order, bool, error) {
	return u.orders.ListDeliveredByCourier(ctx, sess.UID, page, u.pageSize)
}

// visibleStoreIDs implements the visibility rule: couriers and managers see
// the stores of their active associations; admins see all active stores,
// resolved with an explicit store-list step because admins carry no
// association rows.
func (u *OrderUseCase) visibleStoreIDs(ctx context.Context, sess Session) ([]string, error) {
	if sess.Role == entities.RoleAdmin {
		stores, err := u.stores.List(ctx, true)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(stores))
		for _, s := range stores {
			ids = append(ids, s.IDLoja)
		}
		return ids, nil
	}

	ids := sess.StoreIDs()
	if len(ids) == 0 {
		return nil, ErrNoStoreVisibility
	}
	return ids, nil
}

func (u *OrderUseCase) checkVisibility(ctx context.Context, sess Session, orderID string) error {
	if sess.Role == entities.RoleAdmin {
		return nil
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == "" {
		return ErrOrderNotFound
	}
	for _, id := range sess.StoreIDs() {
		if id == order.IDLoja {
			return nil
		}
	}
	return ErrNoStoreVisibility
}

func acceptanceFromSession(sess Session) entities.Acceptance {
	by := entities.Acceptance{UID: sess.UID, Telefone: "Não informado"}
	if sess.Profile != nil {
		by.Nome = sess.Profile.NomeCompleto
		by.Email = sess.Profile.Email
		if sess.Profile.Telefone != "" {
			by.Telefone = sess.Profile.Telefone
		}
	}
	if by.Nome == "" {
		by.Nome = by.Email
	}
	return by
}
