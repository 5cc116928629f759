package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidStoreID     = errors.New("invalid store id")
	ErrInvalidStoreName   = errors.New("invalid store name")
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreAlreadyExists = errors.New("store already exists")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrUserNotFound       = errors.New("user not found")
)

// LogoUpload is an optional logo file accompanying a store create/update.
type LogoUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// IDirectoryUseCase is the admin-side directory: stores, pending users,
// role associations and best-effort user deletion, plus profile self-edit.

type IDirectoryUseCase interface {
	CreateStore(ctx context.Context, store entities.Store, logo *LogoUpload) (entities.Store, error)
	UpdateStore(ctx context.Context, storeID string, patch entities.StorePatch, logo *LogoUpload) (entities.Store, error)
	ListStores(ctx context.Context) ([]entities.Store, error)
	ListPendingUsers(ctx context.Context) ([]entities.User, error)
	AssociateManager(ctx context.Context, uid, storeID string) (entities.StoreAssociation, error)
	DeleteUser(ctx context.Context, uid string) error
	UpdateProfile(ctx context.Context, uid, nomeCompleto, telefone, telegramChatID string) (entities.User, error)
}

type DirectoryUseCase struct {
	stores   interfaces.IStoreRepository
	users    interfaces.IUserRepository
	assocs   interfaces.IAssociationRepository
	objects  interfaces.IObjectStorage
	identity interfaces.IIdentityProvider

	now func() time.Time
}

var _ IDirectoryUseCase = (*DirectoryUseCase)(nil)

func NewDirectoryUseCase(
	stores interfaces.IStoreRepository,
	users interfaces.IUserRepository,
	assocs interfaces.IAssociationRepository,
	objects interfaces.IObjectStorage,
	identity interfaces.IIdentityProvider,
) *DirectoryUseCase {
	return &DirectoryUseCase{
		stores:   stores,
		users:    users,
		assocs:   assocs,
		objects:  objects,
		identity: identity,
		now:      time.Now,
	}
}

func (u *DirectoryUseCase) CreateStore(ctx context.Context, store entities.Store, logo *LogoUpload) (entities.Store, error) {
	store.IDLoja = strings.TrimSpace(store.IDLoja)
	if store.IDLoja == "" {
		return entities.Store{}, ErrInvalidStoreID
	}
	if strings.TrimSpace(store.LojaNome) == "" {
		return entities.Store{}, ErrInvalidStoreName
	}

	if existing, err := u.stores.GetByID(ctx, store.IDLoja); err != nil {
		return entities.Store{}, err
	} else if existing.IDLoja != "" {
		return entities.Store{}, ErrStoreAlreadyExists
	}

	if logo != nil {
		url, err := u.uploadLogo(ctx, store.IDLoja, logo)
		if err != nil {
			return entities.Store{}, err
		}
		store.LojaLogo = url
	}
	return u.stores.Create(ctx, store)
}

// UpdateStore applies a partial edit on top of the stored row. The stored
// logo and ativa flag survive any edit that does not carry a replacement.
func (u *DirectoryUseCase) UpdateStore(ctx context.Context, storeID string, patch entities.StorePatch, logo *LogoUpload) (entities.Store, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.Store{}, ErrInvalidStoreID
	}

	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		return entities.Store{}, err
	}
	if store.IDLoja == "" {
		return entities.Store{}, ErrStoreNotFound
	}

	if patch.LojaNome != nil {
		name := strings.TrimSpace(*patch.LojaNome)
		if name == "" {
			return entities.Store{}, ErrInvalidStoreName
		}
		store.LojaNome = name
	}
	if patch.LojaEndereco != nil {
		store.LojaEndereco = strings.TrimSpace(*patch.LojaEndereco)
	}
	if patch.LojaTelefone != nil {
		store.LojaTelefone = strings.TrimSpace(*patch.LojaTelefone)
	}
	if patch.CNPJ != nil {
		store.CNPJ = strings.TrimSpace(*patch.CNPJ)
	}
	if patch.PerimetroEntrega != nil {
		store.PerimetroEntrega = strings.TrimSpace(*patch.PerimetroEntrega)
	}
	if patch.Ativa != nil {
		store.Ativa = *patch.Ativa
	}

	if logo != nil {
		url, err := u.uploadLogo(ctx, storeID, logo)
		if err != nil {
			return entities.Store{}, err
		}
		store.LojaLogo = url
	}

	updated, err := u.stores.Update(ctx, store)
	if err != nil {
		return entities.Store{}, err
	}
	if updated.IDLoja == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return updated, nil
}

func (u *DirectoryUseCase) ListStores(ctx context.Context) ([]entities.Store, error) {
	return u.stores.List(ctx, false)
}

// ListPendingUsers returns users holding no active store association,
// computed by set subtraction: everyone, minus the uids appearing in active
// associations. Admins never count as pending.
func (u *DirectoryUseCase) ListPendingUsers(ctx context.Context) ([]entities.User, error) {
	associated, err := u.assocs.ListActiveUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(associated))
	for _, uid := range associated {
		taken[uid] = true
	}

	all, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]entities.User, 0)
	for _, usr := range all {
		if !usr.IsAdmin && !taken[usr.UID] {
			pending = append(pending, usr)
		}
	}
	return pending, nil
}

func (u *DirectoryUseCase) AssociateManager(ctx context.Context, uid, storeID string) (entities.StoreAssociation, error) {
	uid = strings.TrimSpace(uid)
	storeID = strings.TrimSpace(storeID)
	if uid == "" {
		return entities.StoreAssociation{}, ErrInvalidUserID
	}
	if storeID == "" {
		return entities.StoreAssociation{}, ErrInvalidStoreID
	}

	usr, err := u.users.GetByUID(ctx, uid)
	if err != nil {
		return entities.StoreAssociation{}, err
	}
	if usr.UID == "" {
		return entities.StoreAssociation{}, ErrUserNotFound
	}
	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		return entities.StoreAssociation{}, err
	}
	if store.IDLoja == "" {
		return entities.StoreAssociation{}, ErrStoreNotFound
	}

	assoc := entities.StoreAssociation{
		ID:               uuid.NewString(),
		UIDUsuario:       uid,
		IDLoja:           storeID,
		Funcao:           entities.StoreRoleGerente,
		StatusVinculacao: entities.AssociationStatusAtivo,
	}
	return u.assocs.Create(ctx, assoc)
}

// DeleteUser removes the account best-effort: the identity provider first,
// then the profile row. A provider failure is logged and does not keep the
// profile row alive.
func (u *DirectoryUseCase) DeleteUser(ctx context.Context, uid string) error {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ErrInvalidUserID
	}

	usr, err := u.users.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if usr.UID == "" {
		return ErrUserNotFound
	}

	if u.identity != nil {
		if err := u.identity.DeleteUser(ctx, uid); err != nil {
			log.WithError(err).WithField("uid", uid).Warn("identity provider deletion failed; removing profile anyway")
		}
	}
	return u.users.Delete(ctx, uid)
}

func (u *DirectoryUseCase) UpdateProfile(ctx context.Context, uid, nomeCompleto, telefone, telegramChatID string) (entities.User, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.User{}, ErrInvalidUserID
	}

	updated, err := u.users.UpdateProfile(ctx, entities.User{
		UID:            uid,
		NomeCompleto:   strings.TrimSpace(nomeCompleto),
		Telefone:       strings.TrimSpace(telefone),
		TelegramChatID: strings.TrimSpace(telegramChatID),
	})
	if err != nil {
		return entities.User{}, err
	}
	if updated.UID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *DirectoryUseCase) uploadLogo(ctx context.Context, storeID string, logo *LogoUpload) (string, error) {
	ext := strings.TrimPrefix(path.Ext(logo.FileName), ".")
	if ext == "" {
		ext = "png"
	}
	key := fmt.Sprintf("logos/logo_loja_%s_%d.%s", storeID, u.now().UnixMilli(), ext)
	return u.objects.Upload(ctx, key, logo.ContentType, logo.Content)
}
