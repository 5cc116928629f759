package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "entregaswoo/internal/adapter/http/dto/request"
	response "entregaswoo/internal/adapter/http/dto/response"
	"entregaswoo/internal/usecase"
	"entregaswoo/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBatchPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid reconciliation payload", http.StatusBadRequest)
)

// ReconciliationHandler is the manager-side batch payment surface: single
// freight edits plus the validate/commit two-step.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// UpdateFreight godoc
// @Summary      Edit the payout of one delivered order
// @Description  Rejected with 409 FREIGHT_LOCKED once the order was processed or carries a payment date.
// @Tags         reconciliation
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Order ID"
// @Param        payload  body  request.FreightUpdateRequest  true  "New frete_pago"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/freight [patch]
func (h *ReconciliationHandler) UpdateFreight(c *gin.Context) {
	var payload request.FreightUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.FretePago == nil {
		c.JSON(errInvalidBatchPayload.HTTPStatus, errInvalidBatchPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateFreight(c.Request.Context(), SessionFrom(c), c.Param("id"), *payload.FretePago)
	if err != nil {
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ValidateBatch godoc
// @Summary      Validate a payment batch
// @Description  Dry run: checks the selection and returns the per-order payouts and total. Writes nothing.
// @Tags         reconciliation
// @Accept       json
// @Produce      json
// @Param        payload  body  request.BatchRequest  true  "Order ids and payment date"
// @Success      200  {object}  usecase.BatchSummary
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /reconciliation/validate [post]
func (h *ReconciliationHandler) ValidateBatch(c *gin.Context) {
	req, appErr := bindBatchRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.Validate(c.Request.Context(), SessionFrom(c), req)
	if err != nil {
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CommitBatch godoc
// @Summary      Commit a payment batch
// @Description  Re-validates, then writes each order independently. Per-order outcomes are reported; there is no cross-row rollback.
// @Tags         reconciliation
// @Accept       json
// @Produce      json
// @Param        payload  body  request.BatchRequest  true  "Order ids and payment date"
// @Success      200  {object}  usecase.BatchResult
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /reconciliation/commit [post]
func (h *ReconciliationHandler) CommitBatch(c *gin.Context) {
	req, appErr := bindBatchRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Commit(c.Request.Context(), SessionFrom(c), req)
	if err != nil {
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindBatchRequest(c *gin.Context) (usecase.BatchRequest, *pkg.AppError) {
	var payload request.BatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return usecase.BatchRequest{}, errInvalidBatchPayload
	}
	date, err := payload.ResolvePaymentDate()
	if err != nil {
		return usecase.BatchRequest{}, pkg.NewDomainErrorSimple("INVALID_PAYMENT_DATE", "Invalid payment date", http.StatusBadRequest)
	}
	return usecase.BatchRequest{OrderIDs: payload.OrderIDs, PaymentDate: date}, nil
}

func mapReconciliationError(err error) *pkg.AppError {
	var missing *usecase.MissingFreightError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidFreightValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "No orders selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentDate):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_DATE", "Payment date is required", http.StatusBadRequest)
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple(
			"MISSING_FREIGHT",
			"Orders without a positive freight value: "+strings.Join(missing.OrderIDs, ", "),
			http.StatusBadRequest,
		)
	case errors.Is(err, usecase.ErrFreightLocked):
		return pkg.NewDomainErrorSimple("FREIGHT_LOCKED", "Freight already processed and locked", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoStoreVisibility):
		return pkg.NewDomainErrorSimple("NO_STORE_ACCESS", "No active store association", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
