// internal/router/router.go
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/config"
	"github.com/brushwork/artmarket-backend/internal/handlers"
	"github.com/brushwork/artmarket-backend/internal/middleware"
	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/session"
)

func Initialize(db *gorm.DB, cfg *config.Config, sessions *session.Store) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	artistService := services.NewArtistService(db)
	artworkService := services.NewArtworkService(db)
	authService := services.NewAuthService(db, sessions)
	userService := services.NewUserService(db)
	purchaseService := services.NewPurchaseService(db)
	sellService := services.NewSellService(db)
	cartService := services.NewCartService(db)

	// Initialize handlers
	artistHandler := handlers.NewArtistHandler(artistService)
	artworkHandler := handlers.NewArtworkHandler(artworkService)
	authHandler := handlers.NewAuthHandler(authService, cfg.Session)
	userHandler := handlers.NewUserHandler(userService, sessions)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	sellHandler := handlers.NewSellHandler(sellService)
	cartHandler := handlers.NewCartHandler(cartService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(db)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters are built per engine so each instance tracks its own
	// visitors.
	authLimit := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	uploadLimit := authLimit
	if cfg.RateLimit.Enabled {
		general := middleware.NewRateLimiter(rate.Every(time.Second), cfg.RateLimit.GeneralBurst)
		r.Use(general.Middleware())
		authLimit = middleware.NewRateLimiter(rate.Every(time.Minute), cfg.RateLimit.AuthBurst).Middleware()
		uploadLimit = middleware.NewRateLimiter(rate.Every(time.Minute), cfg.RateLimit.UploadBurst).Middleware()
	}

	sessionRequired := middleware.SessionRequired(sessions, cfg.Session.CookieName)
	optionalSession := middleware.OptionalSession(sessions, cfg.Session.CookieName)

	r.GET("/", diagnosticsHandler.Home)
	r.GET("/health", diagnosticsHandler.Health)
	r.GET("/seed-check", diagnosticsHandler.SeedCheck)

	// Artists
	r.GET("/artists", artistHandler.List)
	r.POST("/artists", artistHandler.Create)
	r.GET("/artists/:id", artistHandler.Get)
	r.PATCH("/artists/:id", artistHandler.Update)
	r.DELETE("/artists/:id", artistHandler.Delete)

	// Artworks
	r.GET("/artworks", artworkHandler.List)
	r.POST("/artworks", artworkHandler.Create)
	r.GET("/artworks/:id", artworkHandler.Get)
	r.PATCH("/artworks/:id", artworkHandler.Update)
	r.DELETE("/artworks/:id", artworkHandler.Delete)

	// Accounts
	r.POST("/signup", authLimit, authHandler.Signup)
	r.POST("/login", authLimit, authHandler.Login)
	r.POST("/logout", optionalSession, authHandler.Logout)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Get)
	r.PATCH("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)

	// Purchases
	r.POST("/purchases", sessionRequired, purchaseHandler.Create)
	r.GET("/purchases/:id", purchaseHandler.Get)
	r.GET("/purchases/user/:id", purchaseHandler.ListByUser)
	// DELETE keeps the historical dual-effect wiring; the /sell alias names
	// what it actually does.
	r.DELETE("/purchases/:id", purchaseHandler.Sell)
	r.POST("/purchases/:id/sell", purchaseHandler.Sell)

	// Sell listings
	r.GET("/sells", sellHandler.List)
	r.GET("/sells/:id", sellHandler.Get)
	r.PATCH("/sells/:id", sellHandler.Update)
	r.DELETE("/sells/:id", sellHandler.Delete)

	// Cart
	r.POST("/cart", cartHandler.Add)
	r.GET("/cart/:user_id", cartHandler.ListByUser)
	r.DELETE("/cart/:cart_id", cartHandler.Remove)
	r.POST("/cart/checkout/:user_id", cartHandler.Checkout)

	// Uploads
	r.POST("/upload", uploadLimit, uploadHandler.Upload)
	if cfg.AWS.AccessKeyID == "" {
		// Local development serves uploads straight from disk.
		r.Static("/uploads", cfg.Upload.LocalDir)
	}

	return r, nil
}
