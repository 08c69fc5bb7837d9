package routes

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"booking-gateway/controllers"
	"booking-gateway/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the route tree.
func SetupRouter(
	hc *controllers.HotelController,
	sc *controllers.SessionController,
	bc *controllers.BookingController,
	fc *controllers.FavoriteController,
	cc *controllers.CustomerController,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Sessionless supplier passthroughs
		api.POST("/hotel-search", hc.Search)
		api.POST("/hotel-details", hc.Details)
		api.POST("/hotel-room", hc.Room)
		api.POST("/hotel-codes", hc.Codes)

		// Booking lifecycle sessions
		sessions := api.Group("/sessions")
		{
			sessions.POST("", sc.CreateSession)
			sessions.GET("/:id", sc.GetSession)
			sessions.POST("/:id/search", sc.Search)
			sessions.POST("/:id/select", sc.SelectRoom)
			sessions.POST("/:id/deselect", sc.DeselectRoom)
			sessions.POST("/:id/prebook", sc.Prebook)
			sessions.POST("/:id/book", sc.Book)
			sessions.POST("/:id/cancel", sc.Cancel)
		}

		// Recorded bookings and standalone cancel
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.List)
			bookings.GET("/:confirmation", bc.Get)
		}
		api.POST("/hotel-cancel", bc.Cancel)

		// Favorites
		favorites := api.Group("/favorites")
		{
			favorites.GET("", fc.List)
			favorites.POST("", fc.Toggle)
			favorites.DELETE("", fc.Clear)
		}

		// Customers
		customers := api.Group("/customers")
		{
			customers.POST("", cc.Register)
		}
		api.POST("/auth/login", cc.Login)
	}

	return r
}
