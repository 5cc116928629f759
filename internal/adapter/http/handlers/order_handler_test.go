package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"entregaswoo/internal/adapter/http/handlers/mocks"
	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func withSession(sess usecase.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func courierTestSession() usecase.Session {
	return usecase.Session{
		Authenticated: true,
		UID:           "u1",
		Role:          entities.RoleEntregador,
		Lojas: []entities.StoreAssociation{
			{IDLoja: "L1", Funcao: entities.StoreRoleEntregador, StatusVinculacao: entities.AssociationStatusAtivo},
		},
	}
}

func TestOrderHandler_AcceptOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIOrderUseCase, sess usecase.Session) *gin.Engine {
		r := gin.New()
		h := NewOrderHandler(uc)
		r.POST("/v1/orders/:id/accept", withSession(sess), h.AcceptOrder)
		return r
	}

	t.Run("winner gets the accepted order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc, courierTestSession())

		uc.EXPECT().Accept(gomock.Any(), gomock.Any(), "o1").
			Return(entities.Order{ID: "o1", StatusTransporte: entities.TransportStatusAceito}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("loser gets 409 ORDER_ALREADY_TAKEN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc, courierTestSession())

		uc.EXPECT().Accept(gomock.Any(), gomock.Any(), "o1").
			Return(entities.Order{}, usecase.ErrOrderAlreadyTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := w.Body.String(); !contains(body, "ORDER_ALREADY_TAKEN") {
			t.Fatalf("expected stable code in body, got %s", body)
		}
	})

	t.Run("unknown order gets 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc, courierTestSession())

		uc.EXPECT().Accept(gomock.Any(), gomock.Any(), "gone").
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/gone/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign store gets 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc, courierTestSession())

		uc.EXPECT().Accept(gomock.Any(), gomock.Any(), "o9").
			Return(entities.Order{}, usecase.ErrNoStoreVisibility)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o9/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListPendingOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := gin.New()
	h := NewOrderHandler(uc)
	r.GET("/v1/orders", withSession(courierTestSession()), h.ListPendingOrders)

	uc.EXPECT().ListPending(gomock.Any(), gomock.Any(), 2).
		Return([]entities.Order{{ID: "o1", StatusTransporte: entities.TransportStatusAguardando}}, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !contains(body, `"has_more":true`) || !contains(body, `"page":2`) {
		t.Fatalf("expected paginated envelope, got %s", body)
	}
}

func TestOrderHandler_ListDeliveredOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIOrderUseCase, sess usecase.Session) *gin.Engine {
		r := gin.New()
		h := NewOrderHandler(uc)
		r.GET("/v1/orders/delivered", withSession(sess), h.ListDeliveredOrders)
		return r
	}

	t.Run("manager view applies the payment filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		sess := usecase.Session{Authenticated: true, UID: "g1", Role: entities.RoleGerente}
		r := newRouter(uc, sess)

		uc.EXPECT().ListDelivered(gomock.Any(), gomock.Any(), usecase.DeliveredFilter("processado"), 1).
			Return(nil, false, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/delivered?status=processado", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("courier sees own deliveries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newRouter(uc, courierTestSession())

		uc.EXPECT().ListMyDeliveries(gomock.Any(), gomock.Any(), 1).Return(nil, false, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/delivered", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
