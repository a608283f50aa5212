package ctxutil

import (
	"context"
	"testing"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := WithActorID(context.Background(), "ada")
	if got := ActorFromContext(ctx); got != "ada" {
		t.Errorf("expected ada, got %q", got)
	}
}

func TestActorMissing(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}
	if got := ActorFromContext(WithActorID(context.Background(), "")); got != "" {
		t.Errorf("empty actor should not be stored, got %q", got)
	}
}
