package provider

import (
	"time"

	"github.com/aquatech-store/internal/cache"
	"github.com/aquatech-store/internal/config"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/queue"
	"github.com/aquatech-store/internal/repository"
	"github.com/aquatech-store/internal/service"
	"github.com/aquatech-store/internal/watch"
)

// Container wires repositories and services together once at startup.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Hub         *watch.Hub

	// Repositories
	UserRepo         repository.UserRepository
	ProductRepo      repository.ProductRepository
	CartRepo         repository.CartRepository
	GuestCartStore   repository.GuestCartStore
	OrderRepo        repository.OrderRepository
	BookingRepo      repository.BookingRepository
	AddressRepo      repository.AddressRepository
	AnnouncementRepo repository.AnnouncementRepository
	FeedbackRepo     repository.FeedbackRepository

	// Services
	AuthService         *service.AuthService
	CatalogService      *service.CatalogService
	CartService         *service.CartService
	RecommendService    *service.RecommendService
	OrderService        *service.OrderService
	BookingService      *service.BookingService
	AddressService      *service.AddressService
	AnnouncementService *service.AnnouncementService
	FeedbackService     *service.FeedbackService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	if queueClient == nil {
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Hub:         watch.NewHub(),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.AnnouncementRepo = repository.NewAnnouncementRepository(db)
	c.FeedbackRepo = repository.NewFeedbackRepository(db)

	// Guest carts live in Redis when it is up, in the database otherwise.
	if cache.Enabled() {
		ttl := time.Duration(c.Config.Cart.GuestTTLHours) * time.Hour
		c.GuestCartStore = repository.NewRedisGuestCartStore(ttl)
	} else {
		c.GuestCartStore = repository.NewGormGuestCartStore(db)
	}
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.Hub, c.Config.Catalog.RefreshSeconds)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.GuestCartStore, c.Hub)
	c.RecommendService = service.NewRecommendService(c.CatalogService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartService, c.QueueClient)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.ProductRepo, c.AddressRepo, c.QueueClient)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.AnnouncementService = service.NewAnnouncementService(c.AnnouncementRepo)
	c.FeedbackService = service.NewFeedbackService(c.FeedbackRepo)
}
