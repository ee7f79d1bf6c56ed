// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler *handler.DeviceHandler
	AdminHandler  *handler.AdminHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler *handler.DeviceHandler
	adminHandler  *handler.AdminHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler: params.DeviceHandler,
		adminHandler:  params.AdminHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Device-facing routes used by the mobile apps
	deviceGroup := e.Group("/device")
	{
		deviceGroup.POST("/fcm-token", r.deviceHandler.SetFCMToken)
		deviceGroup.POST("/checkin", r.deviceHandler.Checkin)
		deviceGroup.GET("/surveys", r.deviceHandler.AvailableSurveys)
	}

	// Operator routes
	adminGroup := e.Group("/admin")
	{
		adminGroup.POST("/notifications/resend", r.adminHandler.Resend)
	}
}
