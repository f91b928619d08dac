// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bartile/internal/delivery/api/middleware"
	"bartile/internal/delivery/api/router/handler"
	deliverymw "bartile/internal/delivery/middleware"
	"bartile/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	ConfiguratorHandler *handler.ConfiguratorHandler
	AuthHandler         *handler.AuthHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler      *handler.CatalogHandler
	configuratorHandler *handler.ConfiguratorHandler
	authHandler         *handler.AuthHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:      params.CatalogHandler,
		configuratorHandler: params.ConfiguratorHandler,
		authHandler:         params.AuthHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog, active items only
	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/profiles", r.catalogHandler.ListProfiles)
		catalogGroup.GET("/colors", r.catalogHandler.ListColors)
		catalogGroup.GET("/textures", r.catalogHandler.ListTextures)
		catalogGroup.GET("/houses", r.catalogHandler.ListHouses)
		catalogGroup.GET("/categories", r.catalogHandler.Categories)
	}

	// Configurator sessions
	sessions := apiV1.Group("/configurator/sessions")
	sessions.Use(deliverymw.ParamLogAttr("id", "session_id"))
	{
		sessions.POST("", r.configuratorHandler.StartSession)
		sessions.GET("/:id", r.configuratorHandler.GetSession)
		sessions.DELETE("/:id", r.configuratorHandler.EndSession)
		sessions.PATCH("/:id/selection", r.configuratorHandler.Select)
		sessions.POST("/:id/next", r.configuratorHandler.Next)
		sessions.POST("/:id/prev", r.configuratorHandler.Prev)
		sessions.POST("/:id/jump", r.configuratorHandler.JumpTo)
		sessions.POST("/:id/reset", r.configuratorHandler.Reset)
		sessions.GET("/:id/preview", r.configuratorHandler.Preview)
		sessions.GET("/:id/share", r.configuratorHandler.Share)
		sessions.GET("/:id/share.png", r.configuratorHandler.ShareQR)
		sessions.POST("/:id/quote", r.configuratorHandler.SubmitQuote)
	}

	// Admin routes require an authenticated admin
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stats", r.adminHandler.Stats)

		registerCatalogAdmin(adminGroup.Group("/profiles"), r.adminHandler.Profiles)
		registerCatalogAdmin(adminGroup.Group("/colors"), r.adminHandler.Colors)
		registerCatalogAdmin(adminGroup.Group("/textures"), r.adminHandler.Textures)
		registerCatalogAdmin(adminGroup.Group("/houses"), r.adminHandler.Houses)

		adminGroup.GET("/quotes", r.adminHandler.ListQuotes)
		adminGroup.GET("/quotes/:id", r.adminHandler.GetQuote)
		adminGroup.PATCH("/quotes/:id/status", r.adminHandler.UpdateQuoteStatus)
	}
}

func registerCatalogAdmin[T entity.CatalogEntity](g *echo.Group, h *handler.CatalogAdmin[T]) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
