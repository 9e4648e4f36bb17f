// Package identity holds the client's view of "who is logged in": the
// Identity record, the single-writer Cache that owns it, and the LogoutGuard
// that disables reads while a logout is in flight.
//
// The cache and the API client reference each other: the client is the
// cache's only writer and also its network delegate for misses and forced
// refreshes. The cycle is broken by constructing the cache first and binding
// the client's fetch function afterwards:
//
//	guard := identity.NewLogoutGuard(clk)
//	cache := identity.NewCache(guard)
//	// ... the API client calls cache.Bind(client.fetchRemote) on construction
//
// While the guard is active every read resolves to absent. This prevents a
// stale fetch response from resurrecting an identity the user just discarded.
package identity
