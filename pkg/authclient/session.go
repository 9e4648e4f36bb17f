package authclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mkovalev/sessionguard/pkg/credentials"
	"github.com/mkovalev/sessionguard/pkg/identity"
	"github.com/mkovalev/sessionguard/pkg/logger"
)

// FetchIdentity resolves the current identity. The cached identity is
// returned unless force is set or nothing is cached; while a logout is in
// flight it always resolves to absent without touching the network.
//
// A nil identity with a nil error means "not logged in". A non-nil error
// carries diagnostics (transport failure or unexpected status); the identity
// is absent in that case too.
func (c *Client) FetchIdentity(ctx context.Context, force bool) (*identity.Identity, error) {
	return c.cache.Get(ctx, force)
}

// fetchRemote is the cache's network delegate: one read call with at most
// one renewal attempt on an auth rejection.
func (c *Client) fetchRemote(ctx context.Context) (*identity.Identity, error) {
	// Nothing to authenticate with and nothing to renew: not an error.
	if !c.creds.Has(credentials.TierAccess) {
		c.cache.Clear()
		return nil, nil
	}

	resp, err := c.do(ctx, http.MethodGet, endpointUser, nil, credentials.TierAccess)
	if err != nil {
		c.cache.Clear()
		return nil, errors.Join(ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var id identity.Identity
		decode(resp, &id)
		c.cache.Set(&id)
		return &id, nil

	case resp.StatusCode == http.StatusUnauthorized:
		var body struct {
			Msg string `json:"msg"`
		}
		decode(resp, &body)

		// "Missing ..." marks an absent credential: there is nothing to
		// renew, so resolve to not-logged-in without a refresh attempt.
		if strings.HasPrefix(body.Msg, "Missing") {
			c.cache.Clear()
			return nil, nil
		}

		id, err := c.Refresh(ctx)
		if err != nil {
			c.log.DebugContext(ctx, "renewal after auth rejection failed",
				logger.Component("authclient"), logger.Error(err))
			return nil, nil
		}
		return id, nil

	default:
		statusErr := readStatusError(resp)
		c.cache.Clear()
		return nil, statusErr
	}
}

// Refresh renews the session using the refresh-tier credential. On success
// the cached identity is replaced with the server's response; on any failure
// it is cleared.
func (c *Client) Refresh(ctx context.Context) (*identity.Identity, error) {
	resp, err := c.do(ctx, http.MethodPost, endpointRefresh, nil, credentials.TierRefresh)
	if err != nil {
		c.cache.Clear()
		return nil, errors.Join(ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := readStatusError(resp)
		c.cache.Clear()
		return nil, errors.Join(ErrAuthFailed, statusErr)
	}

	var id identity.Identity
	decode(resp, &id)
	c.cache.Set(&id)
	return &id, nil
}

// Logout tears the session down. The identity is cleared optimistically
// before the network call so observers react instantly, and credentials are
// cleared regardless of the network outcome. The reentrancy guard is held
// from before the optimistic clear until a grace window after completion.
func (c *Client) Logout(ctx context.Context) Result {
	c.guard.Acquire()
	c.cache.Clear()

	resp, err := c.do(ctx, http.MethodDelete, endpointLogout, nil, credentials.TierAccess)

	c.creds.Clear()
	c.guard.Release(c.cfg.LogoutGrace)

	if err != nil {
		return errorResult("Network error during logout")
	}

	if resp.StatusCode == http.StatusNoContent || (resp.StatusCode >= 200 && resp.StatusCode < 300) {
		drain(resp)
		return Result{Success: true}
	}

	var body struct {
		Error string `json:"error"`
	}
	decode(resp, &body)
	if body.Error == "" {
		body.Error = "Logout failed"
	}
	return errorResult(body.Error)
}

// ClearCredentials performs the wide credential clear on behalf of callers
// that must not mutate the store directly, such as the lifecycle controller
// after a failed renewal.
func (c *Client) ClearCredentials() {
	c.creds.Clear()
}

// readStatusError captures the status and body for caller diagnostics.
func readStatusError(resp *http.Response) *StatusError {
	var raw struct {
		Error string `json:"error"`
		Msg   string `json:"msg"`
	}
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	decode(resp, &raw)
	switch {
	case raw.Error != "":
		statusErr.Body = raw.Error
	case raw.Msg != "":
		statusErr.Body = raw.Msg
	}
	return statusErr
}
