// ABOUTME: Request context carrier for the authenticated principal
// ABOUTME: Provides WithPrincipal/FromContext for propagating identity to handlers

package auth

import (
	"context"

	"github.com/hirelane/hirelane/internal/store"
)

// principalKey is the key type for storing the principal in context.Context.
type principalKey struct{}

// WithPrincipal returns a new context with the authenticated user attached.
// Only the gate middleware should call this; handlers read, never write.
func WithPrincipal(ctx context.Context, user *store.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// FromContext retrieves the authenticated user from the context, returning
// nil if the request did not pass through the gate.
func FromContext(ctx context.Context) *store.User {
	val := ctx.Value(principalKey{})
	if val == nil {
		return nil
	}
	user, ok := val.(*store.User)
	if !ok {
		return nil
	}
	return user
}

// MustFromContext retrieves the authenticated user from the context,
// panicking if not present.
func MustFromContext(ctx context.Context) *store.User {
	user := FromContext(ctx)
	if user == nil {
		panic("auth: principal not found in context")
	}
	return user
}
