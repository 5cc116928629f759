package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"entregaswoo/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const deleteRetries = 3

// AuthAdminClient talks to the managed auth backend's admin REST surface.
// Only user deletion is needed; transient failures are retried a fixed
// number of times with linear backoff before being returned to the caller,
// who treats them as best-effort anyway.
type AuthAdminClient struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

var _ interfaces.IIdentityProvider = (*AuthAdminClient)(nil)

func NewAuthAdminClient(baseURL, serviceToken string) *AuthAdminClient {
	return &AuthAdminClient{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AuthAdminClient) DeleteUser(ctx context.Context, uid string) error {
	if c.baseURL == "" {
		return errors.New("auth admin endpoint not configured")
	}

	var lastErr error
	for attempt := 1; attempt <= deleteRetries; attempt++ {
		if lastErr = c.deleteOnce(ctx, uid); lastErr == nil {
			return nil
		}
		log.WithError(lastErr).WithFields(log.Fields{"uid": uid, "attempt": attempt}).Warn("identity provider delete failed")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return lastErr
}

func (c *AuthAdminClient) deleteOnce(ctx context.Context, uid string) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, uid)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.Wrap(err, "building identity delete request")
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling identity provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		// A user already gone at the provider is fine for a delete.
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return errors.Errorf("identity provider returned %d: %s", resp.StatusCode, string(body))
}
