package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"entregaswoo/internal/adapter/http/handlers/mocks"
	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_ReceiveWooCommerceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIWebhookIngestUseCase) *gin.Engine {
		r := gin.New()
		r.HandleMethodNotAllowed = true
		h := NewWebhookHandler(uc)
		r.POST("/v1/webhooks/woocommerce", h.ReceiveWooCommerceOrder)
		return r
	}

	t.Run("acknowledges the persisted order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookIngestUseCase(ctrl)
		r := newRouter(uc)

		body := []byte(`{"id":42,"id_loja":"L1"}`)
		uc.EXPECT().Ingest(gomock.Any(), body, "sig-header").
			Return(entities.Order{ID: "ord-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SignatureHeader, "sig-header")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var ack map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
			t.Fatalf("decoding ack: %v", err)
		}
		if ack["id"] != "ord-1" {
			t.Fatalf("expected inserted id in ack, got %v", ack)
		}
		if msg, ok := ack["message"].(string); !ok || msg == "" {
			t.Fatalf("expected a message in ack, got %v", ack)
		}
	})

	t.Run("bad signature yields 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookIngestUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, usecase.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBufferString(`{}`))
		req.Header.Set(SignatureHeader, "forged")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !contains(w.Body.String(), "INVALID_SIGNATURE") {
			t.Fatalf("expected INVALID_SIGNATURE code, got %s", w.Body.String())
		}
	})

	t.Run("unparseable payload yields 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookIngestUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, usecase.ErrInvalidWebhookPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBufferString(`{`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insert failure yields 400 with the cause surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookIngestUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/woocommerce", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !contains(w.Body.String(), "dynamodb unavailable") {
			t.Fatalf("expected the insert cause in the body, got %s", w.Body.String())
		}
	})

	t.Run("non-POST is method not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIWebhookIngestUseCase(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/woocommerce", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", w.Code)
		}
	})
}
