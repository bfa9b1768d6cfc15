package policy

import (
	"context"

	"github.com/EventosBrinson/rdi-brinson-sub000/pkg/identity"
)

// actorCtxKey is the context key for storing the resolved actor.
type actorCtxKey struct{}

// SetActorToContext stores the resolved actor in the context.
func SetActorToContext(ctx context.Context, actor *identity.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// GetActorFromContext retrieves the resolved actor from the context.
func GetActorFromContext(ctx context.Context) (*identity.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(*identity.Actor)
	return actor, ok && actor != nil
}
