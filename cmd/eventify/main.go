package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"eventify/config"
	"eventify/internal/delivery"
	deliveryhttp "eventify/internal/delivery/http"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/delivery/http/router/handler"
	"eventify/internal/domain/service"
	"eventify/internal/infra/auth"
	"eventify/internal/infra/image"
	logs "eventify/internal/infra/log"
	"eventify/internal/infra/persistence/firestore"
	"eventify/internal/infra/stockphoto"
	"eventify/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewBusinessRepository,
			firestore.NewNotificationRepository,
			firestore.NewEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenVerifier,
			newImageService,
			newStockPhotoService,
		),
	)
}

// newTokenVerifier creates the Firebase ID token verifier with dependency injection
func newTokenVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	return auth.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// newImageService creates the image hosting service with dependency injection
func newImageService(cfg *config.Config) (service.ImageService, error) {
	if cfg.Cloudinary == nil {
		return nil, errors.New("cloudinary configuration is required")
	}

	return image.NewCloudinaryService(cfg.Cloudinary)
}

// newStockPhotoService creates the stock-photo search service with dependency injection
func newStockPhotoService(cfg *config.Config) (service.StockPhotoService, error) {
	if cfg.Unsplash == nil {
		return nil, errors.New("unsplash configuration is required")
	}

	return stockphoto.NewUnsplashService(cfg.Unsplash, http.DefaultClient), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBusinessService,
			impl.NewCatalogService,
			impl.NewNotificationService,
			impl.NewEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewCatalogHandler,
			handler.NewNotificationHandler,
			handler.NewEventHandler,
			handler.NewMediaHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
