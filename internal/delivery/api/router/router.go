// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"trafficalert/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SubscriberHandler *handler.SubscriberHandler
	DispatchHandler   *handler.DispatchHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriberHandler *handler.SubscriberHandler
	dispatchHandler   *handler.DispatchHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriberHandler: params.SubscriberHandler,
		dispatchHandler:   params.DispatchHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Subscribers are addressed by contact handle in the body, not by ID
	subscribersGroup := apiV1.Group("/subscribers")
	{
		subscribersGroup.POST("", r.subscriberHandler.Register)
		subscribersGroup.PUT("", r.subscriberHandler.UpdateLocation)
		subscribersGroup.DELETE("", r.subscriberHandler.Unsubscribe)
	}

	apiV1.GET("/dispatch/status", r.dispatchHandler.Status)
}
