package identity

import (
	"context"
	"log/slog"
	"sync"
)

// FetchFunc retrieves a fresh identity from the identity service. Returning
// (nil, nil) means "not authenticated" rather than an error.
type FetchFunc func(ctx context.Context) (*Identity, error)

// Cache is the single-writer, in-memory cache of the current identity.
// The API client is the only writer; UI observers read through Current.
// Reads are disabled while the logout guard is held.
type Cache struct {
	mu      sync.RWMutex
	current *Identity

	guard *LogoutGuard
	fetch FetchFunc
	log   *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger for the cache.
func WithLogger(log *slog.Logger) CacheOption {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCache creates an identity cache guarded by the given LogoutGuard.
// The fetch delegate is bound later by the API client via Bind, since client
// and cache reference each other.
func NewCache(guard *LogoutGuard, opts ...CacheOption) *Cache {
	if guard == nil {
		guard = NewLogoutGuard(nil)
	}

	c := &Cache{
		guard: guard,
		log:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Bind installs the fetch delegate. Must be called before Get can reach the
// network; Get without a delegate returns only what is cached.
func (c *Cache) Bind(fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetch = fetch
}

// Guard exposes the logout guard shared with the API client.
func (c *Cache) Guard() *LogoutGuard {
	return c.guard
}

// Get returns the current identity, delegating to the bound fetch when
// nothing is cached or force is set. While a logout is in flight it always
// resolves to absent without consulting the network.
func (c *Cache) Get(ctx context.Context, force bool) (*Identity, error) {
	if c.guard.Active() {
		c.log.DebugContext(ctx, "identity read suppressed during logout")
		return nil, nil
	}

	c.mu.RLock()
	cached := c.current
	fetch := c.fetch
	c.mu.RUnlock()

	if cached != nil && !force {
		return cached, nil
	}

	if fetch == nil {
		return cached, nil
	}

	return fetch(ctx)
}

// Current returns the cached identity without any network fallback.
func (c *Cache) Current() *Identity {
	if c.guard.Active() {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Set replaces the cached identity wholesale.
func (c *Cache) Set(id *Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = id
}

// Clear removes the cached identity.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Authenticated reports whether an identity is currently cached.
func (c *Cache) Authenticated() bool {
	return c.Current() != nil
}
