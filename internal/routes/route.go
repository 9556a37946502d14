package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/container"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/handlers"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/helpers"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/middleware"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(container.Monitor.RequestMetrics())
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "inevent-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService, container.CatalogService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	protected.POST("/logout", handlers.Logout(container.CatalogService))
	protected.GET("/profile", func(c *gin.Context) {
		user, exist := c.Get("user")
		if !exist {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		enhancedClaims, ok := user.(*helpers.EnhancedClaims)
		if !ok {
			c.JSON(500, gin.H{"error": "Invalid user claims format"})
			return
		}

		c.JSON(200, gin.H{
			"status":   "OK",
			"user_id":  enhancedClaims.Subject,
			"email":    enhancedClaims.Email,
			"role":     enhancedClaims.GetSafeRole(),
			"name":     enhancedClaims.UserName,
			"is_admin": enhancedClaims.IsAdmin(),
		})
	})

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(container.UserService))
	}

	gigRoutes := protected.Group("/gigs")
	{
		gigRoutes.POST("/", handlers.CreateGig(container.GigService))
		gigRoutes.GET("/", handlers.ListGigs(container.GigService))
		gigRoutes.GET("/:id", handlers.GetGig(container.GigService))
		gigRoutes.PATCH("/:id", handlers.UpdateGig(container.GigService))
		gigRoutes.DELETE("/:id", handlers.DeleteGig(container.GigService))
		gigRoutes.POST("/:id/quote", handlers.QuoteGig(container.GigService))
		gigRoutes.POST("/:id/reviews", handlers.AddReview(container.GigService))
		gigRoutes.POST("/:id/tickets", handlers.AddTicket(container.TicketService))
	}

	ticketRoutes := protected.Group("/tickets")
	{
		ticketRoutes.GET("/", handlers.ListTickets(container.TicketService))
		ticketRoutes.POST("/", handlers.PublishTicket(container.TicketService))
	}

	orderRoutes := protected.Group("/orders")
	{
		orderRoutes.POST("/", handlers.PlaceOrder(container.OrderService))
		orderRoutes.GET("/", handlers.ListMyOrders(container.OrderService))
		orderRoutes.GET("/:id", handlers.GetOrder(container.OrderService))
		orderRoutes.PATCH("/:id/status", handlers.UpdateOrderStatus(container.OrderService))
	}

	protected.GET("/search", handlers.Search(container.SearchService))
	protected.GET("/categories", handlers.ListCategories(container.CatalogService))

	artistRoutes := protected.Group("/artists")
	{
		artistRoutes.GET("/", handlers.ListArtists(container.CatalogService))
		artistRoutes.GET("/:id/gigs", handlers.ListGigsByArtist(container.GigService))
	}

	savedRoutes := protected.Group("/saved-artists")
	{
		savedRoutes.GET("/", handlers.ListSavedArtists(container.SavedArtistsService))
		savedRoutes.PUT("/", handlers.ReplaceSavedArtists(container.SavedArtistsService))
		savedRoutes.POST("/:id/toggle", handlers.ToggleSavedArtist(container.SavedArtistsService))
	}

	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
	{
		adminRoutes.GET("/stats", handlers.AdminStats(container.AdminService))
		adminRoutes.GET("/orders", handlers.ListOrders(container.OrderService))
		adminRoutes.POST("/categories", handlers.CreateCategory(container.CatalogService))
		adminRoutes.PATCH("/categories/:id", handlers.UpdateCategory(container.CatalogService))
		adminRoutes.DELETE("/categories/:id", handlers.DeleteCategory(container.CatalogService))
	}

	return r
}
