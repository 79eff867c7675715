package router

import (
	"fmt"
	"strings"

	"github.com/aquatech-store/internal/cache"
	"github.com/aquatech-store/internal/config"
	publichandlers "github.com/aquatech-store/internal/http/handlers/public"
	"github.com/aquatech-store/internal/logger"
	"github.com/aquatech-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and the public API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "aq"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded product images.
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.Static("/uploads", uploadDir)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/catalog", handler.GetCatalog)
			public.GET("/catalog/watch", handler.WatchCatalog)
			public.GET("/products", handler.ListProducts)
			public.GET("/products/:slug", handler.GetProduct)
			public.GET("/announcements", handler.ListAnnouncements)
			public.GET("/recommendations", OptionalJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), handler.GetRecommendations)
			public.POST("/feedback", handler.SubmitFeedback)
		}

		// Guest cart, keyed by the X-Guest-Token header.
		guest := apiV1.Group("/guest")
		{
			guest.GET("/cart", handler.GetGuestCart)
			guest.POST("/cart/items", handler.AddGuestCartItem)
			guest.PUT("/cart/items/:product_id", handler.UpdateGuestCartItem)
			guest.DELETE("/cart/items/:product_id", handler.RemoveGuestCartItem)
			guest.DELETE("/cart", handler.ClearGuestCart)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), handler.Login)
		}

		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", handler.GetProfile)
			user.PUT("/me/profile", handler.UpdateProfile)
			user.PUT("/me/password", handler.ChangePassword)

			user.GET("/cart", handler.GetCart)
			user.GET("/cart/watch", handler.WatchCart)
			user.POST("/cart/items", handler.AddCartItem)
			user.PUT("/cart/items/:product_id", handler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", handler.RemoveCartItem)
			user.DELETE("/cart", handler.ClearCart)
			user.POST("/cart/merge", handler.MergeCart)

			user.POST("/orders", handler.PlaceOrder)
			user.GET("/orders", handler.ListOrders)
			user.GET("/orders/by-order-no/:order_no", handler.GetOrder)

			user.POST("/bookings", handler.CreateBooking)
			user.GET("/bookings", handler.ListBookings)

			user.POST("/addresses", handler.CreateAddress)
			user.GET("/addresses", handler.ListAddresses)
			user.DELETE("/addresses/:id", handler.DeleteAddress)
		}
	}

	return r
}
