package handlers

import (
	"errors"
	"net/http"

	response "entregaswoo/internal/adapter/http/dto/response"
	"entregaswoo/internal/usecase"
	"entregaswoo/pkg"

	"github.com/gin-gonic/gin"
)

// SignatureHeader is the HMAC header WooCommerce stamps on each delivery.
const SignatureHeader = "X-WC-Webhook-Signature"

// WebhookHandler receives storefront order webhooks.

type WebhookHandler struct {
	usecase usecase.IWebhookIngestUseCase
}

func NewWebhookHandler(uc usecase.IWebhookIngestUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// ReceiveWooCommerceOrder godoc
// @Summary      Ingest a WooCommerce order webhook
// @Description  Verifies the HMAC signature against the raw body, persists the order and queues courier notifications.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-WC-Webhook-Signature  header  string  false  "Base64 HMAC-SHA256 of the raw body"
// @Success      200  {object}  response.WebhookAckResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /webhooks/woocommerce [post]
func (h *WebhookHandler) ReceiveWooCommerceOrder(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Unreadable request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Ingest(c.Request.Context(), rawBody, c.GetHeader(SignatureHeader))
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Message: "Pedido recebido e salvo", ID: order.ID})
}

// mapWebhookError keeps the storefront contract at 400 for every rejection,
// signature mismatch and insert failure included, with the insert cause
// surfaced in the message.
func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INSERT_FAILED", "Failed to store order: "+err.Error(), err, http.StatusBadRequest)
	}
}
