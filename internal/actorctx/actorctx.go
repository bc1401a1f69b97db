package actorctx

import (
	"context"
	"time"
)

// Actor is the identity carried by a verified session token.
type Actor struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func From(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)

	return a, ok && a.Subject != ""
}
