// Package firestore contains the concrete implementation of the
// persistence layer on top of Cloud Firestore through the Firebase Admin
// SDK. All filtering and pagination beyond simple equality/in predicates
// happens client-side; the store is the sole persistent owner of every
// entity.
package firestore

import (
	"context"
	"log/slog"

	"eventify/config"
	"eventify/internal/errors"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names used by this subsystem.
const (
	businessCollection     = "businesses"
	notificationCollection = "notifications"
	eventCollection        = "events"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client from the Firebase app credentials.
func New(params Params) (*fs.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	app, err := firebase.NewApp(
		params.Ctx,
		&firebase.Config{ProjectID: params.Config.Firebase.ProjectID},
		option.WithCredentialsFile(params.Config.Firebase.CredentialsPath),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
