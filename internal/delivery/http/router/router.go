// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventify/config"
	"eventify/internal/delivery/http/middleware"
	"eventify/internal/delivery/http/router/handler"
	"eventify/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	BusinessHandler     *handler.BusinessHandler
	CatalogHandler      *handler.CatalogHandler
	NotificationHandler *handler.NotificationHandler
	EventHandler        *handler.EventHandler
	MediaHandler        *handler.MediaHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	businessHandler     *handler.BusinessHandler
	catalogHandler      *handler.CatalogHandler
	notificationHandler *handler.NotificationHandler
	eventHandler        *handler.EventHandler
	mediaHandler        *handler.MediaHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		businessHandler:     params.BusinessHandler,
		catalogHandler:      params.CatalogHandler,
		notificationHandler: params.NotificationHandler,
		eventHandler:        params.EventHandler,
		mediaHandler:        params.MediaHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route below requires a verified ID token.
	auth := r.authMiddleware.Authenticate
	provider := r.authMiddleware.RequireRole(entity.RoleServiceProvider)

	// Business listings: reads for every signed-in caller, mutations for
	// service providers only.
	businessGroup := e.Group("/businesses")
	businessGroup.Use(auth)
	{
		businessGroup.GET("", r.catalogHandler.ListBusinesses)
		businessGroup.GET("/watch", r.businessHandler.Watch)
		businessGroup.GET("/:id", r.businessHandler.Get)

		businessGroup.POST("", r.businessHandler.Create, provider)
		businessGroup.POST("/profile", r.businessHandler.CreateProfile, provider)
		businessGroup.PATCH("/:id", r.businessHandler.Update, provider)
		businessGroup.DELETE("/:id", r.businessHandler.Delete, provider)

		businessGroup.POST("/:id/products", r.businessHandler.AddProduct, provider)
		businessGroup.PATCH("/:id/products/:index", r.businessHandler.UpdateProduct, provider)
		businessGroup.DELETE("/:id/products/:index", r.businessHandler.DeleteProduct, provider)
	}

	// Flattened product catalog
	e.GET("/products", r.catalogHandler.ListProducts, auth)

	// Provider notification inbox
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(auth, provider)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.GET("/watch", r.notificationHandler.Watch)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	// Event-side attach flow
	e.POST("/events/:id/attach", r.eventHandler.AttachProduct, auth)

	// Media helpers
	e.POST("/images", r.mediaHandler.UploadImage, auth, provider)
	e.GET("/stock-photos", r.mediaHandler.SearchStockPhotos, auth)

	// Optional endpoints for exercising middleware in deployed envs
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, auth)
		}
	}
}
