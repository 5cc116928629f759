package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"entregaswoo/internal/domain/entities"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidAccessToken = errors.New("invalid access token")
)

// Session is the resolved identity handed to every protected route. It is
// the single role authority of the application: whatever the client claims,
// views are gated on Session.Role alone.
type Session struct {
	Authenticated bool
	UID           string
	Profile       *entities.User
	Role          entities.Role
	Lojas         []entities.StoreAssociation
	// Note carries the non-fatal "profile row missing" condition: the
	// session stays a visitante but the caller can tell why.
	Note string
}

// StoreIDs returns the ids of the session's active store associations.
func (s Session) StoreIDs() []string {
	ids := make([]string, 0, len(s.Lojas))
	for _, a := range s.Lojas {
		ids = append(ids, a.IDLoja)
	}
	return ids
}

// ISessionUseCase resolves a bearer token into a Session.

type ISessionUseCase interface {
	Resolve(ctx context.Context, token string) (Session, error)
	Invalidate(uid string)
}

type cachedSession struct {
	session   Session
	expiresAt time.Time
}

// SessionUseCase verifies the auth backend's HS256 access token locally,
// loads the profile row and derives the role by precedence (admin >
// gerente > entregador > visitante). Resolutions are memoized per uid in a
// short TTL cache so repeated loads (tab focus, per-request middleware) do
// not hammer the backend; the clock is injectable to make expiry testable.
type SessionUseCase struct {
	users  interfaces.IUserRepository
	assocs interfaces.IAssociationRepository
	secret []byte
	ttl    time.Duration

	mu    sync.Mutex
	cache map[string]cachedSession
	now   func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(users interfaces.IUserRepository, assocs interfaces.IAssociationRepository, jwtSecret string, ttl time.Duration) *SessionUseCase {
	return &SessionUseCase{
		users:  users,
		assocs: assocs,
		secret: []byte(jwtSecret),
		ttl:    ttl,
		cache:  make(map[string]cachedSession),
		now:    time.Now,
	}
}

// SetClock replaces the cache clock. Test hook.
func (u *SessionUseCase) SetClock(now func() time.Time) {
	u.now = now
}

func (u *SessionUseCase) Resolve(ctx context.Context, token string) (Session, error) {
	if token == "" {
		// No session is not an error: the caller is simply a visitante.
		return Session{Role: entities.RoleVisitante}, nil
	}

	uid, err := u.verifyToken(token)
	if err != nil {
		log.WithError(err).Debug("session: token verification failed")
		return Session{}, ErrInvalidAccessToken
	}

	if cached, ok := u.lookup(uid); ok {
		return cached, nil
	}

	sess, err := u.load(ctx, uid)
	if err != nil {
		return Session{}, err
	}
	u.store(uid, sess)
	return sess, nil
}

// Invalidate drops a cached session, e.g. after a profile edit.
func (u *SessionUseCase) Invalidate(uid string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.cache, uid)
}

func (u *SessionUseCase) load(ctx context.Context, uid string) (Session, error) {
	profile, err := u.users.GetByUID(ctx, uid)
	if err != nil {
		return Session{}, err
	}
	if profile.UID == "" {
		log.WithField("uid", uid).Warn("session: profile row missing")
		return Session{
			Authenticated: true,
			UID:           uid,
			Role:          entities.RoleVisitante,
			Note:          "profile not found",
		}, nil
	}

	sess := Session{
		Authenticated: true,
		UID:           uid,
		Profile:       &profile,
	}

	// Admins have no association rows; skip the membership fetch entirely.
	if profile.IsAdmin {
		sess.Role = entities.RoleAdmin
		return sess, nil
	}

	lojas, err := u.assocs.ListActiveByUser(ctx, uid)
	if err != nil {
		return Session{}, err
	}
	sess.Lojas = lojas
	sess.Role = entities.ResolveRole(false, lojas)
	return sess, nil
}

func (u *SessionUseCase) verifyToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidAccessToken
	}
	return sub, nil
}

func (u *SessionUseCase) lookup(uid string) (Session, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	entry, ok := u.cache[uid]
	if !ok || u.now().After(entry.expiresAt) {
		return Session{}, false
	}
	return entry.session, true
}

func (u *SessionUseCase) store(uid string, sess Session) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cache[uid] = cachedSession{session: sess, expiresAt: u.now().Add(u.ttl)}
}
