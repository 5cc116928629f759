package usecase

import (
	"context"
	"errors"
	"testing"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"
	mock_interfaces "entregaswoo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func courierSession(uid string, storeIDs ...string) Session {
	sess := Session{
		Authenticated: true,
		UID:           uid,
		Role:          entities.RoleEntregador,
		Profile: &entities.User{
			UID:          uid,
			NomeCompleto: "João Entregador",
			Email:        "joao@example.com",
			Telefone:     "11988887777",
		},
	}
	for _, id := range storeIDs {
		sess.Lojas = append(sess.Lojas, entities.StoreAssociation{
			UIDUsuario:       uid,
			IDLoja:           id,
			Funcao:           entities.StoreRoleEntregador,
			StatusVinculacao: entities.AssociationStatusAtivo,
		})
	}
	return sess
}

func adminSession(uid string) Session {
	return Session{
		Authenticated: true,
		UID:           uid,
		Role:          entities.RoleAdmin,
		Profile:       &entities.User{UID: uid, NomeCompleto: "Admin", Email: "admin@example.com", IsAdmin: true},
	}
}

func TestOrderUseCase_Accept(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, 10)
		_, err := uc.Accept(context.Background(), courierSession("u1", "L1"), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order outside visible stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", IDLoja: "L9"}, nil)

		_, err := uc.Accept(context.Background(), courierSession("u1", "L1"), "o1")
		if !errors.Is(err, ErrNoStoreVisibility) {
			t.Fatalf("expected ErrNoStoreVisibility, got %v", err)
		}
	})

	t.Run("winner gets stamped order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)
		sess := courierSession("u1", "L1")

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", IDLoja: "L1", StatusTransporte: entities.TransportStatusAguardando}, nil)
		repo.EXPECT().AcceptPending(gomock.Any(), "o1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, by entities.Acceptance) (entities.Order, error) {
				if by.UID != "u1" || by.Nome != "João Entregador" || by.Telefone != "11988887777" {
					t.Fatalf("unexpected acceptance stamp: %+v", by)
				}
				return entities.Order{ID: id, IDLoja: "L1", StatusTransporte: entities.TransportStatusAceito, AceitoPor: &by}, nil
			})

		got, err := uc.Accept(context.Background(), sess, "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StatusTransporte != entities.TransportStatusAceito || got.AceitoPor == nil {
			t.Fatalf("expected accepted order with stamp, got %+v", got)
		}
	})

	t.Run("loser of the race sees conflict, not success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", IDLoja: "L1", StatusTransporte: entities.TransportStatusAguardando}, nil),
			repo.EXPECT().AcceptPending(gomock.Any(), "o1", gomock.Any()).Return(entities.Order{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", IDLoja: "L1", StatusTransporte: entities.TransportStatusAceito}, nil),
		)

		_, err := uc.Accept(context.Background(), courierSession("u2", "L1"), "o1")
		if !errors.Is(err, ErrOrderAlreadyTaken) {
			t.Fatalf("expected ErrOrderAlreadyTaken, got %v", err)
		}
	})

	t.Run("zero rows on a vanished order is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)

		// Admin skips the visibility fetch, so only the disambiguation
		// read remains.
		gomock.InOrder(
			repo.EXPECT().AcceptPending(gomock.Any(), "gone", gomock.Any()).Return(entities.Order{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Order{}, nil),
		)

		_, err := uc.Accept(context.Background(), adminSession("a1"), "gone")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("name falls back to email", func(t *testing.T) {
		sess := courierSession("u1", "L1")
		sess.Profile.NomeCompleto = ""
		by := acceptanceFromSession(sess)
		if by.Nome != "joao@example.com" {
			t.Fatalf("expected email fallback, got %q", by.Nome)
		}
	})
}

func TestOrderUseCase_Deliver(t *testing.T) {
	t.Run("courier delivers own order with ownership condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)

		repo.EXPECT().MarkDelivered(gomock.Any(), "o1", "u1").
			Return(entities.Order{ID: "o1", StatusTransporte: entities.TransportStatusEntregue}, nil)

		got, err := uc.Deliver(context.Background(), courierSession("u1", "L1"), "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StatusTransporte != entities.TransportStatusEntregue {
			t.Fatalf("expected entregue, got %q", got.StatusTransporte)
		}
	})

	t.Run("not deliverable when still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 10)

		gomock.InOrder(
			repo.EXPECT().MarkDelivered(gomock.Any(), "o1", "u1").Return(entities.Order{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", StatusTransporte: entities.TransportStatusAguardando}, nil),
		)

		_, err := uc.Deliver(context.Background(), courierSession("u1", "L1"), "o1")
		if !errors.Is(err, ErrOrderNotDeliverable) {
			t.Fatalf("expected ErrOrderNotDeliverable, got %v", err)
		}
	})
}

func TestOrderUseCase_Revert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, 10)

	repo.EXPECT().Revert(gomock.Any(), "o1").
		Return(entities.Order{ID: "o1", StatusTransporte: entities.TransportStatusRevertido, UltimoStatus: entities.TransportStatusEntregue}, nil)

	got, err := uc.Revert(context.Background(), adminSession("a1"), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StatusTransporte != entities.TransportStatusRevertido || got.UltimoStatus != entities.TransportStatusEntregue {
		t.Fatalf("expected reverted order keeping ultimo_status, got %+v", got)
	}
	if got.AceitoPor != nil {
		t.Fatalf("expected acceptance cleared on revert")
	}
}

func TestOrderUseCase_ListPending(t *testing.T) {
	t.Run("courier scoped to associations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, 5)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.OrderListFilter) ([]entities.Order, bool, error) {
				if len(f.StoreIDs) != 2 || f.StoreIDs[0] != "L1" || f.StoreIDs[1] != "L2" {
					t.Fatalf("unexpected store scope: %v", f.StoreIDs)
				}
				if len(f.Statuses) != 2 {
					t.Fatalf("expected aguardando+revertido statuses, got %v", f.Statuses)
				}
				if f.Page != 2 || f.PageSize != 5 {
					t.Fatalf("unexpected paging: %+v", f)
				}
				return []entities.Order{{ID: "o1"}}, true, nil
			})

		orders, hasMore, err := uc.ListPending(context.Background(), courierSession("u1", "L1", "L2"), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || !hasMore {
			t.Fatalf("unexpected result: %v hasMore=%v", orders, hasMore)
		}
	})

	t.Run("no association yields no visibility", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, 5)
		_, _, err := uc.ListPending(context.Background(), courierSession("u1"), 1)
		if !errors.Is(err, ErrNoStoreVisibility) {
			t.Fatalf("expected ErrNoStoreVisibility, got %v", err)
		}
	})

	t.Run("admin resolves active store set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewOrderUseCase(repo, stores, 5)

		stores.EXPECT().List(gomock.Any(), true).Return([]entities.Store{{IDLoja: "L1"}, {IDLoja: "L3"}}, nil)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f interfaces.OrderListFilter) ([]entities.Order, bool, error) {
				if len(f.StoreIDs) != 2 {
					t.Fatalf("expected every active store, got %v", f.StoreIDs)
				}
				return nil, false, nil
			})

		if _, _, err := uc.ListPending(context.Background(), adminSession("a1"), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_ListDelivered(t *testing.T) {
	managerSess := Session{
		Authenticated: true,
		UID:           "g1",
		Role:          entities.RoleGerente,
		Lojas: []entities.StoreAssociation{
			{IDLoja: "L1", Funcao: entities.StoreRoleGerente, StatusVinculacao: entities.AssociationStatusAtivo},
		},
	}

	cases := []struct {
		name   string
		filter DeliveredFilter
		check  func(t *testing.T, f interfaces.OrderListFilter)
	}{
		{
			name:   "no filter",
			filter: "",
			check: func(t *testing.T, f interfaces.OrderListFilter) {
				if f.StatusPagamento != nil || f.FreteJaProcessado != nil {
					t.Fatalf("expected no payment filter, got %+v", f)
				}
			},
		},
		{
			name:   "unpaid only",
			filter: "false",
			check: func(t *testing.T, f interfaces.OrderListFilter) {
				if f.StatusPagamento == nil || *f.StatusPagamento {
					t.Fatalf("expected status_pagamento=false filter, got %+v", f)
				}
			},
		},
		{
			name:   "processed only",
			filter: "processado",
			check: func(t *testing.T, f interfaces.OrderListFilter) {
				if f.FreteJaProcessado == nil || !*f.FreteJaProcessado {
					t.Fatalf("expected frete_ja_processado filter, got %+v", f)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIOrderRepository(ctrl)
			uc := NewOrderUseCase(repo, nil, 10)

			repo.EXPECT().List(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f interfaces.OrderListFilter) ([]entities.Order, bool, error) {
					if len(f.Statuses) != 1 || f.Statuses[0] != entities.TransportStatusEntregue {
						t.Fatalf("expected entregue status scope, got %v", f.Statuses)
					}
					tc.check(t, f)
					return nil, false, nil
				})

			if _, _, err := uc.ListDelivered(context.Background(), managerSess, tc.filter, 1); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("unknown filter rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, 10)
		_, _, err := uc.ListDelivered(context.Background(), managerSess, "maybe", 1)
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})
}

func TestOrderUseCase_ListMyDeliveries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, 10)

	repo.EXPECT().ListDeliveredByCourier(gomock.Any(), "u1", 3, 10).Return([]entities.Order{{ID: "o1"}}, false, nil)

	orders, hasMore, err := uc.ListMyDeliveries(context.Background(), courierSession("u1", "L1"), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || hasMore {
		t.Fatalf("unexpected result: %v hasMore=%v", orders, hasMore)
	}
}
