package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/middleware"
	"hotel-reservation-backend/models"
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

// SetupRouter wires the controllers into the route tree.
func SetupRouter(
	bc *controllers.BookingController,
	ac *controllers.AdminController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Public catalog
		api.GET("/rooms", controllers.GetRooms)
		api.GET("/food-items", controllers.GetFoodItems)

		// Bookings (authenticated)
		bookings := api.Group("/bookings", middleware.RequireAuth(jwtSecret))
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", bc.GetMyBookings)
			bookings.GET("/:id", bc.GetBookingDetails)
		}
	}

	admin := r.Group("/admin", middleware.RequireAuth(jwtSecret), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", ac.GetAllUsers)
		admin.GET("/users/:id", ac.GetUserDetails)
		admin.DELETE("/users/:id", ac.DeleteUser)

		admin.GET("/rooms", ac.GetAllRooms)
		admin.PUT("/rooms/:id", ac.UpdateRoom)
		admin.PUT("/rooms/:id/availability", ac.UpdateRoomAvailability)
		admin.PUT("/rooms/:id/price", ac.UpdateRoomPrice)
		admin.DELETE("/rooms/:id", ac.DeleteRoom)

		admin.GET("/food-items", ac.GetAllFoodItems)
		admin.POST("/food-items", ac.CreateFoodItem)
		admin.PUT("/food-items/:id", ac.UpdateFoodItem)
		admin.DELETE("/food-items/:id", ac.DeleteFoodItem)

		admin.GET("/bookings", ac.GetAllBookings)
		admin.PUT("/bookings/:id/status", ac.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", ac.DeleteBooking)

		admin.GET("/stats", ac.GetStats)
	}

	return r
}
