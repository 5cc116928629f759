package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	response "entregaswoo/internal/adapter/http/dto/response"
	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase"
	"entregaswoo/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order transport lifecycle and the role-scoped
// listings behind it.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// AcceptOrder godoc
// @Summary      Accept a pending order
// @Description  Claims an aguardando or revertido order for the calling courier. The losing side of a concurrent accept receives 409.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/accept [post]
func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	h.transition(c, h.usecase.Accept)
}

// DeliverOrder godoc
// @Summary      Mark an accepted order delivered
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/deliver [post]
func (h *OrderHandler) DeliverOrder(c *gin.Context) {
	h.transition(c, h.usecase.Deliver)
}

// RevertOrder godoc
// @Summary      Re-open an accepted or delivered order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/revert [post]
func (h *OrderHandler) RevertOrder(c *gin.Context) {
	h.transition(c, h.usecase.Revert)
}

func (h *OrderHandler) transition(
	c *gin.Context,
	op func(ctx context.Context, sess usecase.Session, orderID string) (entities.Order, error),
) {
	order, err := op(c.Request.Context(), SessionFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListPendingOrders godoc
// @Summary      List orders available for pickup
// @Description  Aguardando and revertido orders of the session's visible stores, newest first.
// @Tags         orders
// @Produce      json
// @Param        page  query  int  false  "Page (1-based)"
// @Success      200  {object}  response.OrderListResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListPendingOrders(c *gin.Context) {
	page := pageParam(c)
	orders, hasMore, err := h.usecase.ListPending(c.Request.Context(), SessionFrom(c), page)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, page, hasMore))
}

// ListDeliveredOrders godoc
// @Summary      List delivered orders
// @Description  Managers and admins see their stores' deliveries with the payment filter ("true"/"false" for status_pagamento, "processado" for frete_ja_processado). Couriers see their own deliveries.
// @Tags         orders
// @Produce      json
// @Param        page    query  int     false  "Page (1-based)"
// @Param        status  query  string  false  "Payment filter (manager view only)"
// @Success      200  {object}  response.OrderListResponse
// @Security     Bearer
// @Router       /orders/delivered [get]
func (h *OrderHandler) ListDeliveredOrders(c *gin.Context) {
	page := pageParam(c)
	sess := SessionFrom(c)

	var (
		orders  []entities.Order
		hasMore bool
		err     error
	)
	if sess.Role.Level() >= entities.RoleGerente.Level() {
		filter := usecase.DeliveredFilter(strings.TrimSpace(c.Query("status")))
		orders, hasMore, err = h.usecase.ListDelivered(c.Request.Context(), sess, filter, page)
	} else {
		orders, hasMore, err = h.usecase.ListMyDeliveries(c.Request.Context(), sess, page)
	}
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, page, hasMore))
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyTaken):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_TAKEN", "Order is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotDeliverable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DELIVERABLE", "Order is not in an accepted state", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotRevertible):
		return pkg.NewDomainErrorSimple("ORDER_NOT_REVERTIBLE", "Order cannot be reverted", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoStoreVisibility):
		return pkg.NewDomainErrorSimple("NO_STORE_ACCESS", "No active store association", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
