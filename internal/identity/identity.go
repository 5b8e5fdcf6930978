package identity

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/abhisek/mathrush/internal/store"
)

// guestKey is the meta key holding the persisted guest pseudo-identity.
const guestKey = "guest_id"

// Provider supplies the current user identity. An authenticated user id
// comes from the environment (the mobile app injects it after login); a
// missing one means "guest", a stable uuid minted once and persisted so
// guest progress survives restarts.
type Provider struct {
	meta store.MetaRepo
}

// NewProvider creates a Provider backed by the store's meta table.
func NewProvider(meta store.MetaRepo) *Provider {
	return &Provider{meta: meta}
}

// Current returns the active identity. Never empty on success.
func (p *Provider) Current(ctx context.Context) (string, error) {
	if id := os.Getenv("MATHRUSH_USER"); id != "" {
		return id, nil
	}
	return p.guest(ctx)
}

// IsGuest reports whether id is a guest pseudo-identity.
func IsGuest(id string) bool {
	return len(id) > 6 && id[:6] == "guest-"
}

func (p *Provider) guest(ctx context.Context) (string, error) {
	if id, ok, err := p.meta.Get(ctx, guestKey); err != nil {
		return "", fmt.Errorf("load guest identity: %w", err)
	} else if ok {
		return id, nil
	}

	id := "guest-" + uuid.NewString()
	if err := p.meta.Set(ctx, guestKey, id); err != nil {
		return "", fmt.Errorf("persist guest identity: %w", err)
	}
	return id, nil
}
