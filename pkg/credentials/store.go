package credentials

import (
	"net/http"
	"net/url"
	"time"
)

// Tier distinguishes the two credential classes issued by the identity
// service: short-lived access credentials for ordinary calls and longer-lived
// refresh credentials used only for renewal.
type Tier int

const (
	// TierAccess is the short-lived, general-use credential tier.
	TierAccess Tier = iota
	// TierRefresh is the longer-lived, renewal-only credential tier.
	TierRefresh
)

func (t Tier) String() string {
	switch t {
	case TierAccess:
		return "access"
	case TierRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Cookie names used by the identity service. The CSRF pair is readable by the
// client and attached as the X-CSRF-TOKEN header; the token pair is HttpOnly
// and only ever travels back to the server.
const (
	AccessCSRFCookie   = "csrf_access_token"
	RefreshCSRFCookie  = "csrf_refresh_token"
	accessTokenCookie  = "access_token_cookie"
	refreshTokenCookie = "refresh_token_cookie"
)

// Store reads and clears the credential cookies held in an http.CookieJar.
// It is pure bookkeeping over the jar: no network calls, safe to call from
// any goroutine as long as the jar itself is (net/http/cookiejar is).
type Store struct {
	jar     http.CookieJar
	base    *url.URL
	paths   []string
	domains []string
}

// New creates a Store over the given jar, scoped to the identity service
// base URL. The jar should be the same one installed on the http.Client that
// talks to the service, so the Store sees exactly what the client sends.
func New(jar http.CookieJar, baseURL string, opts ...Option) (*Store, error) {
	if jar == nil {
		return nil, ErrNilJar
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	host := base.Hostname()
	s := &Store{
		jar:     jar,
		base:    base,
		paths:   []string{"/", "/login", "/dashboard"},
		domains: []string{"", host, "." + host},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Read returns the anti-forgery token for the given tier, or the empty
// string when no credential of that tier is stored.
func (s *Store) Read(tier Tier) string {
	name := AccessCSRFCookie
	if tier == TierRefresh {
		name = RefreshCSRFCookie
	}

	for _, c := range s.jar.Cookies(s.base) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// Has reports whether a credential of the given tier is present.
func (s *Store) Has(tier Tier) bool {
	return s.Read(tier) != ""
}

// Clear invalidates both credential tiers. The jar cannot enumerate which
// path/domain scope a cookie was originally stored under, so expired cookies
// are written for every plausible combination. This is best-effort and
// inherently imprecise; it is idempotent and never fails when nothing was
// ever set.
func (s *Store) Clear() {
	names := []string{AccessCSRFCookie, RefreshCSRFCookie, accessTokenCookie, refreshTokenCookie}

	expired := func(name, path, domain string) *http.Cookie {
		return &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    path,
			Domain:  domain,
			MaxAge:  -1,
			Expires: time.Unix(0, 0),
		}
	}

	for _, name := range names {
		cookies := make([]*http.Cookie, 0, len(s.paths)*len(s.domains))
		for _, path := range s.paths {
			for _, domain := range s.domains {
				cookies = append(cookies, expired(name, path, domain))
			}
		}
		s.jar.SetCookies(s.base, cookies)
	}
}
