package service

import (
	"context"

	"eventify/internal/domain/entity"
)

// Identity is the authenticated caller as reported by the identity
// provider: a stable uid plus a role claim. The role value is trusted
// unchecked; authorization beyond role gating is not this subsystem's
// concern.
type Identity struct {
	UID  string
	Role entity.Role
}

// TokenVerifier validates an identity-provider token and extracts the
// caller's identity.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
