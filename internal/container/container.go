package container

import (
	"log/slog"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/monitoring"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	Monitor    *monitoring.Monitor
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client
	RedisClient    *redis.Client

	Catalog             *catalog.Catalog
	UserService         *services.UserService
	CatalogService      *services.CatalogService
	GigService          *services.GigService
	TicketService       *services.TicketService
	OrderService        *services.OrderService
	SearchService       *services.SearchService
	SavedArtistsService *services.SavedArtistsService
	AdminService        *services.AdminService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	supaUrl, supaKey string,
	searchDebounce time.Duration,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)
	redisRepo := models.RedisNewRepo(redisClient)

	monitor := monitoring.NewMonitor()
	cat := catalog.New()

	userService := services.NewUserService(supa)
	catalogService := services.NewCatalogService(supa, mongo, mongo, cat)
	gigService := services.NewGigService(mongo, cat)
	ticketService := services.NewTicketService(mongo, cat)
	orderService := services.NewOrderService(mongo, gigService, cat, monitor)
	searchService := services.NewSearchService(cat, searchDebounce, monitor)
	savedArtistsService := services.NewSavedArtistsService(redisRepo)
	adminService := services.NewAdminService(supa, cat)

	return &Container{
		Logger:              logger,
		Cloudinary:          cloudinary,
		Monitor:             monitor,
		SupabaseClient:      supabaseClient,
		MongoDBClient:       mongoDBClient,
		RedisClient:         redisClient,
		Catalog:             cat,
		UserService:         userService,
		CatalogService:      catalogService,
		GigService:          gigService,
		TicketService:       ticketService,
		OrderService:        orderService,
		SearchService:       searchService,
		SavedArtistsService: savedArtistsService,
		AdminService:        adminService,
	}
}
