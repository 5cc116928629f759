package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"entregaswoo/internal/domain/entities"
	mock_interfaces "entregaswoo/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "test-secret"

func signedToken(t *testing.T, uid string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uid}).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestSessionUseCase_Resolve(t *testing.T) {
	t.Run("empty token is a visitante, not an error", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, testJWTSecret, time.Minute)
		sess, err := uc.Resolve(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Authenticated || sess.Role != entities.RoleVisitante {
			t.Fatalf("expected unauthenticated visitante, got %+v", sess)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, testJWTSecret, time.Minute)
		_, err := uc.Resolve(context.Background(), "not.a.jwt")
		if !errors.Is(err, ErrInvalidAccessToken) {
			t.Fatalf("expected ErrInvalidAccessToken, got %v", err)
		}
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		uc := NewSessionUseCase(nil, nil, testJWTSecret, time.Minute)
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("other"))
		if err != nil {
			t.Fatalf("signing token: %v", err)
		}
		if _, err := uc.Resolve(context.Background(), forged); !errors.Is(err, ErrInvalidAccessToken) {
			t.Fatalf("expected ErrInvalidAccessToken, got %v", err)
		}
	})

	t.Run("admin flag beats manager association", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		assocs := mock_interfaces.NewMockIAssociationRepository(ctrl)
		uc := NewSessionUseCase(users, assocs, testJWTSecret, time.Minute)

		// No ListActiveByUser expectation: admins skip the membership
		// fetch even when association rows exist.
		users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1", IsAdmin: true}, nil)

		sess, err := uc.Resolve(context.Background(), signedToken(t, "u1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Role != entities.RoleAdmin {
			t.Fatalf("expected admin, got %q", sess.Role)
		}
	})

	t.Run("manager association beats courier association", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		assocs := mock_interfaces.NewMockIAssociationRepository(ctrl)
		uc := NewSessionUseCase(users, assocs, testJWTSecret, time.Minute)

		users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1"}, nil)
		assocs.EXPECT().ListActiveByUser(gomock.Any(), "u1").Return([]entities.StoreAssociation{
			{IDLoja: "L1", Funcao: entities.StoreRoleEntregador, StatusVinculacao: entities.AssociationStatusAtivo},
			{IDLoja: "L2", Funcao: entities.StoreRoleGerente, StatusVinculacao: entities.AssociationStatusAtivo},
		}, nil)

		sess, err := uc.Resolve(context.Background(), signedToken(t, "u1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Role != entities.RoleGerente {
			t.Fatalf("expected gerente, got %q", sess.Role)
		}
		if len(sess.StoreIDs()) != 2 {
			t.Fatalf("expected both associations on the session, got %v", sess.StoreIDs())
		}
	})

	t.Run("missing profile row resolves to visitante with note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSessionUseCase(users, nil, testJWTSecret, time.Minute)

		users.EXPECT().GetByUID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		sess, err := uc.Resolve(context.Background(), signedToken(t, "ghost"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sess.Authenticated || sess.Role != entities.RoleVisitante || sess.Note == "" {
			t.Fatalf("expected authenticated visitante with note, got %+v", sess)
		}
	})
}

func TestSessionUseCase_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewSessionUseCase(users, nil, testJWTSecret, 30*time.Second)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.SetClock(func() time.Time { return now })

	token := signedToken(t, "u1")

	// One backend load serves every resolve inside the TTL window.
	users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1", IsAdmin: true}, nil).Times(1)
	for i := 0; i < 3; i++ {
		if _, err := uc.Resolve(context.Background(), token); err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
	}

	// Past the TTL the entry expires and the backend is hit again.
	now = now.Add(31 * time.Second)
	users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1", IsAdmin: true}, nil).Times(1)
	if _, err := uc.Resolve(context.Background(), token); err != nil {
		t.Fatalf("resolve after expiry: %v", err)
	}

	// Invalidate drops the fresh entry immediately.
	uc.Invalidate("u1")
	users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1", IsAdmin: true}, nil).Times(1)
	if _, err := uc.Resolve(context.Background(), token); err != nil {
		t.Fatalf("resolve after invalidate: %v", err)
	}
}
