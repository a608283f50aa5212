// Package ctxutil carries request-scoped values through context.Context.
// It has no internal dependencies so any package can import it.
package ctxutil

import "context"

type actorKey struct{}

// WithActorID returns a context naming the member performing an action.
// The id may be a member id or username; board code resolves either.
func WithActorID(ctx context.Context, actorID string) context.Context {
	if actorID == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFromContext returns the actor set by WithActorID, or "".
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey{}).(string)
	return actor
}
