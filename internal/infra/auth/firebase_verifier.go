// Package auth implements identity verification against Firebase Auth.
package auth

import (
	"context"

	"eventify/internal/domain/entity"
	"eventify/internal/domain/service"
	"eventify/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// roleClaim is the custom claim carrying the account role. Absence means
// the default user role.
const roleClaim = "role"

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a token verifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.TokenVerifier, error) {
	app, err := firebase.NewApp(
		ctx,
		&firebase.Config{ProjectID: projectID},
		option.WithCredentialsFile(credentialsPath),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates the ID token and extracts uid and role claim.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	role := entity.RoleUser
	if raw, ok := token.Claims[roleClaim].(string); ok {
		role = entity.RoleFromString(raw)
	}

	return &service.Identity{
		UID:  token.UID,
		Role: role,
	}, nil
}
