package credentials_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovalev/sessionguard/pkg/credentials"
)

const baseURL = "http://127.0.0.1:5252"

func seedJar(t *testing.T, jar http.CookieJar, names ...string) {
	t.Helper()

	u, err := url.Parse(baseURL)
	require.NoError(t, err)

	cookies := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: "tok-" + name, Path: "/"})
	}
	jar.SetCookies(u, cookies)
}

func TestStore_New(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil jar", func(t *testing.T) {
		t.Parallel()

		_, err := credentials.New(nil, baseURL)
		assert.ErrorIs(t, err, credentials.ErrNilJar)
	})

	t.Run("rejects malformed base URL", func(t *testing.T) {
		t.Parallel()

		jar, err := cookiejar.New(nil)
		require.NoError(t, err)

		_, err = credentials.New(jar, "not a url")
		assert.ErrorIs(t, err, credentials.ErrInvalidBaseURL)
	})
}

func TestStore_Read(t *testing.T) {
	t.Parallel()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	store, err := credentials.New(jar, baseURL)
	require.NoError(t, err)

	t.Run("empty when absent", func(t *testing.T) {
		assert.Empty(t, store.Read(credentials.TierAccess))
		assert.Empty(t, store.Read(credentials.TierRefresh))
		assert.False(t, store.Has(credentials.TierAccess))
	})

	t.Run("returns tier-matching token", func(t *testing.T) {
		seedJar(t, jar, credentials.AccessCSRFCookie, credentials.RefreshCSRFCookie)

		assert.Equal(t, "tok-"+credentials.AccessCSRFCookie, store.Read(credentials.TierAccess))
		assert.Equal(t, "tok-"+credentials.RefreshCSRFCookie, store.Read(credentials.TierRefresh))
		assert.True(t, store.Has(credentials.TierRefresh))
	})
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	store, err := credentials.New(jar, baseURL)
	require.NoError(t, err)

	seedJar(t, jar, credentials.AccessCSRFCookie, credentials.RefreshCSRFCookie)
	require.True(t, store.Has(credentials.TierAccess))

	store.Clear()

	assert.False(t, store.Has(credentials.TierAccess))
	assert.False(t, store.Has(credentials.TierRefresh))

	// Idempotent: clearing an already-empty store must not panic or error.
	store.Clear()
	assert.Empty(t, store.Read(credentials.TierAccess))
}

func TestTier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "access", credentials.TierAccess.String())
	assert.Equal(t, "refresh", credentials.TierRefresh.String())
	assert.Equal(t, "unknown", credentials.Tier(42).String())
}
