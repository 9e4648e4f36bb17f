// Package sessionguard implements client-side session lifecycle management
// for cookie-authenticated web APIs.
//
// SessionGuard keeps a user's session honest on the client: it knows whether
// a session exists, warns before inactivity expires it, renews it on request,
// and tears everything down deterministically on logout.
//
// Key Features:
//
//   - CSRF double-submit credential handling over a standard cookie jar
//   - Session API client for identity fetch, renewal, login, two-factor
//     verification, logout and password-reset requests
//   - Identity cache with a logout reentrancy guard
//   - Inactivity warning with a per-second countdown and forced logout
//   - Background liveness checks against the identity endpoint
//   - Injectable clock for fully deterministic tests
//
// Basic Usage:
//
//	client, err := authclient.New(authclient.Config{BaseURL: "https://api.example.com"})
//	if err != nil {
//		return err
//	}
//
//	ctrl, err := lifecycle.New(lifecycle.DefaultConfig(), client,
//		lifecycle.WithNavigator(lifecycle.NavigatorFunc(router.Push)),
//		lifecycle.WithSink(notify.NewLogSink(log)),
//	)
//	if err != nil {
//		return err
//	}
//
//	if err := ctrl.Start(ctx, currentPath); err != nil {
//		return err // already redirected to the login route
//	}
//	defer ctrl.Stop()
//
// User interactions feed the activity monitor so real usage keeps the
// session alive:
//
//	ctrl.Monitor().Track(activity.SignalKeyPress)
//
// Each concern lives in its own package under pkg/; see the package
// documentation of pkg/lifecycle and pkg/authclient for the full model.
package sessionguard
