package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"entregaswoo/internal/domain/entities"
	mock_interfaces "entregaswoo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDirectoryUseCase_CreateStore(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		uc := NewDirectoryUseCase(nil, nil, nil, nil, nil)
		_, err := uc.CreateStore(context.Background(), entities.Store{LojaNome: "Loja"}, nil)
		if !errors.Is(err, ErrInvalidStoreID) {
			t.Fatalf("expected ErrInvalidStoreID, got %v", err)
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, nil, nil)

		stores.EXPECT().GetByID(gomock.Any(), "L1").Return(entities.Store{IDLoja: "L1"}, nil)

		_, err := uc.CreateStore(context.Background(), entities.Store{IDLoja: "L1", LojaNome: "Loja"}, nil)
		if !errors.Is(err, ErrStoreAlreadyExists) {
			t.Fatalf("expected ErrStoreAlreadyExists, got %v", err)
		}
	})

	t.Run("logo uploaded and url persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		objects := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, objects, nil)
		uc.now = func() time.Time { return time.UnixMilli(1700000000000) }

		stores.EXPECT().GetByID(gomock.Any(), "L1").Return(entities.Store{}, nil)
		objects.EXPECT().Upload(gomock.Any(), "logos/logo_loja_L1_1700000000000.jpg", "image/jpeg", gomock.Any()).
			Return("https://bucket.s3.us-east-1.amazonaws.com/logos/logo_loja_L1_1700000000000.jpg", nil)
		stores.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.LojaLogo == "" {
					t.Fatalf("expected logo url on store")
				}
				return s, nil
			})

		logo := &LogoUpload{FileName: "front.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpegbytes")}
		if _, err := uc.CreateStore(context.Background(), entities.Store{IDLoja: "L1", LojaNome: "Loja", Ativa: true}, logo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDirectoryUseCase_UpdateStore(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("unknown store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, nil, nil)

		stores.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Store{}, nil)

		_, err := uc.UpdateStore(context.Background(), "missing", entities.StorePatch{LojaNome: strPtr("X")}, nil)
		if !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("expected ErrStoreNotFound, got %v", err)
		}
	})

	t.Run("edit without logo keeps the stored logo and ativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, nil, nil)

		existing := entities.Store{
			IDLoja:   "L1",
			LojaNome: "Loja Centro",
			LojaLogo: "https://bucket/logos/logo_loja_L1_1.png",
			Ativa:    false,
		}
		stores.EXPECT().GetByID(gomock.Any(), "L1").Return(existing, nil)
		stores.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.LojaLogo != existing.LojaLogo {
					t.Fatalf("expected stored logo kept, got %q", s.LojaLogo)
				}
				if s.Ativa {
					t.Fatal("expected ativa=false kept when omitted")
				}
				if s.LojaNome != "Loja Norte" {
					t.Fatalf("expected name updated, got %q", s.LojaNome)
				}
				return s, nil
			})

		got, err := uc.UpdateStore(context.Background(), "L1", entities.StorePatch{LojaNome: strPtr(" Loja Norte ")}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LojaLogo != existing.LojaLogo {
			t.Fatalf("expected logo untouched, got %q", got.LojaLogo)
		}
	})

	t.Run("explicit ativa flip applies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, nil, nil)

		stores.EXPECT().GetByID(gomock.Any(), "L1").
			Return(entities.Store{IDLoja: "L1", LojaNome: "Loja", Ativa: true}, nil)
		stores.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.Ativa {
					t.Fatal("expected ativa=false after explicit flip")
				}
				return s, nil
			})

		if _, err := uc.UpdateStore(context.Background(), "L1", entities.StorePatch{Ativa: boolPtr(false)}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, nil, nil)

		stores.EXPECT().GetByID(gomock.Any(), "L1").
			Return(entities.Store{IDLoja: "L1", LojaNome: "Loja"}, nil)

		_, err := uc.UpdateStore(context.Background(), "L1", entities.StorePatch{LojaNome: strPtr("   ")}, nil)
		if !errors.Is(err, ErrInvalidStoreName) {
			t.Fatalf("expected ErrInvalidStoreName, got %v", err)
		}
	})

	t.Run("new logo replaces the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		objects := mock_interfaces.NewMockIObjectStorage(ctrl)
		uc := NewDirectoryUseCase(stores, nil, nil, objects, nil)
		uc.now = func() time.Time { return time.UnixMilli(1700000000000) }

		stores.EXPECT().GetByID(gomock.Any(), "L1").
			Return(entities.Store{IDLoja: "L1", LojaNome: "Loja", LojaLogo: "https://bucket/old.png"}, nil)
		objects.EXPECT().Upload(gomock.Any(), "logos/logo_loja_L1_1700000000000.png", "image/png", gomock.Any()).
			Return("https://bucket/logos/logo_loja_L1_1700000000000.png", nil)
		stores.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s entities.Store) (entities.Store, error) {
				if s.LojaLogo != "https://bucket/logos/logo_loja_L1_1700000000000.png" {
					t.Fatalf("expected new logo url, got %q", s.LojaLogo)
				}
				return s, nil
			})

		logo := &LogoUpload{FileName: "new.png", ContentType: "image/png", Content: strings.NewReader("pngbytes")}
		if _, err := uc.UpdateStore(context.Background(), "L1", entities.StorePatch{}, logo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDirectoryUseCase_ListPendingUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	assocs := mock_interfaces.NewMockIAssociationRepository(ctrl)
	uc := NewDirectoryUseCase(nil, users, assocs, nil, nil)

	assocs.EXPECT().ListActiveUserIDs(gomock.Any()).Return([]string{"u1"}, nil)
	users.EXPECT().List(gomock.Any()).Return([]entities.User{
		{UID: "u1", NomeCompleto: "Associado"},
		{UID: "u2", NomeCompleto: "Pendente"},
		{UID: "u3", NomeCompleto: "Chefe", IsAdmin: true},
	}, nil)

	pending, err := uc.ListPendingUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 || pending[0].UID != "u2" {
		t.Fatalf("expected only u2 pending, got %+v", pending)
	}
}

func TestDirectoryUseCase_AssociateManager(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewDirectoryUseCase(nil, users, nil, nil, nil)

		users.EXPECT().GetByUID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.AssociateManager(context.Background(), "ghost", "L1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("creates active gerente association", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stores := mock_interfaces.NewMockIStoreRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		assocs := mock_interfaces.NewMockIAssociationRepository(ctrl)
		uc := NewDirectoryUseCase(stores, users, assocs, nil, nil)

		users.EXPECT().GetByUID(gomock.Any(), "u2").Return(entities.User{UID: "u2"}, nil)
		stores.EXPECT().GetByID(gomock.Any(), "L1").Return(entities.Store{IDLoja: "L1"}, nil)
		assocs.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.StoreAssociation) (entities.StoreAssociation, error) {
				if a.ID == "" {
					t.Fatalf("expected generated association id")
				}
				if a.Funcao != entities.StoreRoleGerente || a.StatusVinculacao != entities.AssociationStatusAtivo {
					t.Fatalf("expected active gerente association, got %+v", a)
				}
				return a, nil
			})

		assoc, err := uc.AssociateManager(context.Background(), "u2", "L1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if assoc.UIDUsuario != "u2" || assoc.IDLoja != "L1" {
			t.Fatalf("unexpected association: %+v", assoc)
		}
	})
}

func TestDirectoryUseCase_DeleteUser(t *testing.T) {
	t.Run("identity failure does not keep the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewDirectoryUseCase(nil, users, nil, nil, identity)

		gomock.InOrder(
			users.EXPECT().GetByUID(gomock.Any(), "u1").Return(entities.User{UID: "u1"}, nil),
			identity.EXPECT().DeleteUser(gomock.Any(), "u1").Return(errors.New("backend 500")),
			users.EXPECT().Delete(gomock.Any(), "u1").Return(nil),
		)

		if err := uc.DeleteUser(context.Background(), "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewDirectoryUseCase(nil, users, nil, nil, nil)

		users.EXPECT().GetByUID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		if err := uc.DeleteUser(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDirectoryUseCase_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewDirectoryUseCase(nil, users, nil, nil, nil)

	users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			if u.NomeCompleto != "Maria" || u.Telefone != "11988887777" || u.TelegramChatID != "555" {
				t.Fatalf("expected trimmed fields, got %+v", u)
			}
			return u, nil
		})

	got, err := uc.UpdateProfile(context.Background(), "u1", "  Maria ", " 11988887777 ", " 555 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}
