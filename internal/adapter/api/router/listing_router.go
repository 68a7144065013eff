package router

import (
	"github.com/labstack/echo/v4"

	"lendr/internal/adapter/api/handler"
	"lendr/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.Use(middleware.GeneralRateLimit())
	listings.GET("", listingHandler.ListListings)
	listings.GET("/map", listingHandler.MapListings)
	listings.GET("/:id", listingHandler.GetListing)
	listings.POST("", listingHandler.CreateListing)
	listings.PUT("/:id", listingHandler.UpdateListing)
	listings.DELETE("/:id", listingHandler.DeleteListing)
	listings.POST("/:id/toggle", listingHandler.ToggleListingStatus)
}
