// Package authclient wraps outbound calls to the identity service: fetching
// the current identity, silent renewal, login with optional second factor,
// logout and password-reset requests.
//
// Every call attaches Content-Type: application/json. Non-read calls attach
// the X-CSRF-TOKEN header sourced from the access-tier cookie, except
// Refresh which uses the refresh-tier token. Credentials live in the cookie
// jar shared between the HTTP client and the credential store, so the store
// always reflects exactly what travels on the wire.
//
// # Response interpretation
//
// FetchIdentity resolves HTTP 401 in two ways: a body marking a missing
// credential means "not logged in" and triggers no renewal; any other 401
// gets exactly one Refresh attempt before giving up. User-initiated actions
// (Login, SubmitSecondFactor, RequestPasswordReset, Logout) return a uniform
// Result instead of raising; transport failures are folded into Result.Err.
//
// # Usage
//
//	client, err := authclient.New(authclient.DefaultConfig())
//	if err != nil { ... }
//
//	res := client.Login(ctx, "alice", "secret")
//	switch {
//	case res.RequiresTwoFactor:
//	    res = client.SubmitSecondFactor(ctx, code)
//	case !res.OK():
//	    // show res.Err
//	}
package authclient
