package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barkbook/barkbook/internal/app/controllers"
	"github.com/barkbook/barkbook/internal/app/models/dto"
	"github.com/barkbook/barkbook/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	locationController *controllers.LocationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "ok"}})
	})

	// --- Public location routes ---
	locations := v1.Group("/locations")
	{
		locations.GET("", locationController.GetAllLocations)
		locations.GET("/:id", locationController.GetLocationByID)
	}

	// --- Authenticated location routes ---
	locationsProtected := v1.Group("/locations")
	locationsProtected.Use(authMiddleware.JWTAuth())
	{
		locationsProtected.POST("", locationController.CreateLocation)
		locationsProtected.PUT("/:id", locationController.UpdateLocation)
		locationsProtected.DELETE("/:id", locationController.DeleteLocation)
	}
}
