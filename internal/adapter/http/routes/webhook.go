package routes

import (
	"entregaswoo/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// No bearer token on this route; the HMAC signature is the
		// only authenticity check the storefront can produce.
		webhooks.POST("/woocommerce", webhookHandler.ReceiveWooCommerceOrder)
	}
}
