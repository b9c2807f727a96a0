// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"opinator/internal/delivery/http/middleware"
	"opinator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	ReviewHandler   *handler.ReviewHandler
	VoteHandler     *handler.VoteHandler
	UserHandler     *handler.UserHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every mutation requires a verified bearer token so the
// service layer can resolve the caller's identity.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.GET("/auth/callback", r.params.AuthHandler.Callback)

	auth := r.params.AuthMiddleware.Authenticate

	categories := e.Group("/categories")
	{
		categories.GET("", r.params.CategoryHandler.List)
		categories.GET("/paged", r.params.CategoryHandler.ListPaged)
		categories.GET("/:id", r.params.CategoryHandler.Get)
		categories.POST("", r.params.CategoryHandler.Create, auth)
		categories.PUT("", r.params.CategoryHandler.Update, auth)
		categories.DELETE("/:id", r.params.CategoryHandler.Delete, auth)
	}

	products := e.Group("/products")
	{
		products.GET("", r.params.ProductHandler.List)
		products.GET("/paged", r.params.ProductHandler.ListPaged)
		products.GET("/:id", r.params.ProductHandler.Get)
		products.POST("", r.params.ProductHandler.Create, auth)
		products.PUT("", r.params.ProductHandler.Update, auth)
		products.DELETE("/:id", r.params.ProductHandler.Delete, auth)
	}

	reviews := e.Group("/reviews")
	{
		reviews.GET("", r.params.ReviewHandler.List)
		reviews.GET("/paged", r.params.ReviewHandler.ListPaged)
		reviews.GET("/:id", r.params.ReviewHandler.Get)
		reviews.POST("", r.params.ReviewHandler.Create, auth)
		reviews.PUT("", r.params.ReviewHandler.Update, auth)
		reviews.DELETE("/:id", r.params.ReviewHandler.Delete, auth)
	}

	votes := e.Group("/votes")
	{
		votes.GET("", r.params.VoteHandler.List)
		votes.GET("/paged", r.params.VoteHandler.ListPaged)
		votes.GET("/:id", r.params.VoteHandler.Get)
		votes.POST("", r.params.VoteHandler.Create, auth)
		votes.PUT("", r.params.VoteHandler.Update, auth)
		votes.DELETE("/:id", r.params.VoteHandler.Delete, auth)
	}

	users := e.Group("/users")
	{
		users.GET("", r.params.UserHandler.List)
		users.GET("/paged", r.params.UserHandler.ListPaged)
		users.POST("", r.params.UserHandler.Create, auth)
		users.PUT("", r.params.UserHandler.Update, auth)
		users.DELETE("/:id", r.params.UserHandler.Delete, auth)
	}
}
