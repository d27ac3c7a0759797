package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybook/internal/handler/api"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
)

// tool is a named operation exposed over the tool-invocation surface.
// Every tool is invoked as POST /api/tools/<name> with a JSON body.
type tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Handler     gin.HandlerFunc `json:"-"`
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	catalogHandler *api.CatalogHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	userHandler *api.UserHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, bookingHandler, reviewHandler, userHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	catalogHandler *api.CatalogHandler,
	bookingHandler *api.BookingHandler,
	reviewHandler *api.ReviewHandler,
	userHandler *api.UserHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	tools := []tool{
		{Name: "search_properties", Description: "Search the property catalog with optional city, date, guest, type and price filters", Handler: catalogHandler.SearchProperties},
		{Name: "get_property_details", Description: "Fetch a single property including its availability calendar", Handler: catalogHandler.GetPropertyDetails},
		{Name: "list_cities", Description: "List the distinct cities that have at least one property", Handler: catalogHandler.ListCities},
		{Name: "get_user_profile", Description: "Fetch a user's profile, payment methods and booking ids", Handler: userHandler.GetUserProfile},
		{Name: "calculate_booking_cost", Description: "Quote the full cost of a stay without reserving it", Handler: bookingHandler.CalculateBookingCost},
		{Name: "create_booking", Description: "Create a confirmed booking and reserve its dates", Handler: bookingHandler.CreateBooking},
		{Name: "cancel_booking", Description: "Cancel a booking and release its dates", Handler: bookingHandler.CancelBooking},
		{Name: "check_in_booking", Description: "Mark a confirmed booking as checked in", Handler: bookingHandler.CheckInBooking},
		{Name: "complete_booking", Description: "Mark a checked-in booking as completed", Handler: bookingHandler.CompleteBooking},
		{Name: "get_booking_details", Description: "Fetch a single booking", Handler: bookingHandler.GetBookingDetails},
		{Name: "get_user_bookings", Description: "List all bookings belonging to a user", Handler: bookingHandler.GetUserBookings},
		{Name: "add_review", Description: "Add a review to a completed booking", Handler: reviewHandler.AddReview},
		{Name: "get_property_reviews", Description: "List a property's reviews, newest first", Handler: reviewHandler.GetPropertyReviews},
	}

	registry := make(map[string]tool, len(tools))
	for _, t := range tools {
		registry[t.Name] = t
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/tools", listTools(tools))
		apiGroup.POST("/tools/:name", invokeTool(registry))
	}
}

func listTools(tools []tool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tools": tools, "count": len(tools)})
	}
}

func invokeTool(registry map[string]tool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		t, ok := registry[name]
		if !ok {
			httperr.AbortWithError(c, http.StatusNotFound, errs.Newf("unknown tool: %s", name), "Unknown tool", name)
			return
		}
		t.Handler(c)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
