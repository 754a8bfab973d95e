// Package auth provides authentication and authorization for hirelane.
//
// # Session Tokens
//
// Sessions are stateless HS256-signed JWTs carrying only the principal ID
// and timestamps. Tokens are minted at login/registration with a fixed
// validity window (7 days by default) and are never renewed or revoked
// server-side; logout is a cookie overwrite on the client.
//
//	codec, err := auth.NewTokenCodec(secret, 0)
//	token, err := codec.Mint(userID)
//	userID, err := codec.Verify(token)
//
// # The Gate
//
// Middleware is the single place where a token is resolved to a principal.
// It accepts the token from the "token" cookie or, for header-based clients,
// from "Authorization: Bearer <token>", verifies it, loads the user, and
// attaches it to the request context:
//
//	user := auth.FromContext(r.Context())
//
// Handlers behind the gate treat the context principal as already
// authorized and must not re-verify tokens.
//
// # Role Guard
//
// RequireRole composes after Middleware to restrict a route to one role:
//
//	mux.Handle("POST /api/v1/job/post",
//		gate(auth.RequireRole(store.RoleEmployer)(handler)))
//
// # Failure Modes
//
// Verification distinguishes ErrMalformedToken, ErrSignatureInvalid, and
// ErrExpiredToken for logging, but the gate sends the same 401 body for all
// three so a client cannot tell which check rejected it. A valid token whose
// principal no longer exists is a 404.
package auth
