// Package credentials manages the client-side view of the bearer artifacts
// issued by the identity service: an access/refresh credential pair, each with
// an anti-forgery (CSRF) companion cookie.
//
// The Store wraps the http.CookieJar shared with the API client. Read returns
// the anti-forgery token for a tier so it can be attached as the X-CSRF-TOKEN
// header on mutating requests. Clear performs a best-effort wide invalidation
// across every plausible path/domain scope, since the jar cannot report which
// scope a cookie was originally set under.
//
//	jar, _ := cookiejar.New(nil)
//	store, _ := credentials.New(jar, "http://127.0.0.1:5252")
//	token := store.Read(credentials.TierAccess)
package credentials
