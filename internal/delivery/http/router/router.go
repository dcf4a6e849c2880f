// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"potluck/internal/delivery/http/middleware"
	"potluck/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DishHandler       *handler.DishHandler
	CollectionHandler *handler.CollectionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	dishHandler       *handler.DishHandler
	collectionHandler *handler.CollectionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		dishHandler:       params.DishHandler,
		collectionHandler: params.CollectionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/create_user", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)

	// Everything below requires a live session cookie.
	e.GET("/dashboard", r.collectionHandler.Dashboard, r.authMiddleware.Authenticate)

	dishGroup := e.Group("/dishes")
	dishGroup.Use(r.authMiddleware.Authenticate)
	{
		dishGroup.GET("/add", r.dishHandler.NewForm)
		dishGroup.POST("/create", r.dishHandler.Create)
		dishGroup.GET("/:id", r.dishHandler.Show)
		dishGroup.GET("/:id/edit", r.dishHandler.EditForm)
		dishGroup.POST("/:id/update", r.dishHandler.Update)
		dishGroup.POST("/:id/delete", r.dishHandler.Delete)
		dishGroup.GET("/:id/qrcode", r.dishHandler.QRCode)

		// Personal list membership
		dishGroup.POST("/:id/add-to-user", r.collectionHandler.Add)
		dishGroup.POST("/:id/remove-from-user", r.collectionHandler.Remove)
		dishGroup.POST("/:id/done", r.collectionHandler.Complete)
	}
}
