package router

import (
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/config"
	"github.com/LandLandeiro/oba-moda-afro/internal/handler"
	"github.com/LandLandeiro/oba-moda-afro/internal/infra"
	"github.com/LandLandeiro/oba-moda-afro/internal/middleware"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"
	"github.com/LandLandeiro/oba-moda-afro/internal/service"
	"github.com/LandLandeiro/oba-moda-afro/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	whatsapp := infra.NewWhatsAppLinkBuilder(cfg.WhatsAppNumber)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	siteStatRepo := repository.NewSiteStatRepository(db)
	contentRepo := repository.NewContentRepository(db)
	cartStore := repository.NewRedisCartStore(rdb, time.Duration(cfg.CartTTLHours)*time.Hour)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, categoryRepo, dispatcher)
	categorySvc := service.NewCategoryService(categoryRepo)
	promotionSvc := service.NewPromotionService(promotionRepo)
	cartSvc := service.NewCartService(cartStore, productRepo, whatsapp, dispatcher)
	checkoutSvc := service.NewCheckoutService(cartStore, productRepo, orderRepo, whatsapp, dispatcher)
	orderSvc := service.NewOrderService(orderRepo, productRepo, siteStatRepo)
	contentSvc := service.NewContentService(contentRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogH := handler.NewCatalogHandler(productSvc, categorySvc, contentSvc)
	cartH := handler.NewCartHandler(cartSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)
	productsH := handler.NewProductsHandler(productSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	promotionsH := handler.NewPromotionsHandler(promotionSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	contentH := handler.NewContentHandler(contentSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Public storefront, anonymous
	v1 := r.Group("/v1")
	{
		v1.GET("/products", catalogH.ListProducts)
		v1.GET("/products/:slug", catalogH.GetProductBySlug)
		v1.GET("/categories", catalogH.ListCategories)
		v1.GET("/categories/:slug", catalogH.GetCategoryBySlug)

		v1.GET("/content/banners", catalogH.ListBanners)
		v1.GET("/content/header-links", catalogH.ListHeaderLinks)
		v1.GET("/content/footer-links", catalogH.ListFooterLinks)
		v1.GET("/content/sections/:key", catalogH.GetTextSection)

		cart := v1.Group("/cart")
		{
			cart.GET("", cartH.Get)
			cart.POST("/items", cartH.Add)
			cart.PUT("/items", cartH.Update)
			cart.DELETE("/items/:variationId", cartH.Remove)
			cart.DELETE("", cartH.Clear)
		}

		v1.POST("/checkout", checkoutH.Checkout)
	}

	// Back office: any valid admin token grants full access
	admin := r.Group("/v1/admin", middleware.JWTAuth(cfg.JWTSecret))
	{
		admin.GET("/dashboard", ordersH.Dashboard)

		products := admin.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.POST("/:id/duplicate", productsH.Duplicate)
			products.POST("/:id/variations", productsH.AddVariation)
		}
		admin.PUT("/variations/:variationId", productsH.UpdateVariation)
		admin.DELETE("/variations/:variationId", productsH.DeleteVariation)

		categories := admin.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		promotions := admin.Group("/promotions")
		{
			promotions.POST("", promotionsH.Create)
			promotions.GET("", promotionsH.List)
			promotions.GET("/:id", promotionsH.GetByID)
			promotions.PUT("/:id", promotionsH.Update)
			promotions.DELETE("/:id", promotionsH.Delete)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.GetByID)
			orders.PATCH("/:id/status", ordersH.UpdateStatus)
		}

		content := admin.Group("/content")
		{
			content.POST("/banners", contentH.CreateBanner)
			content.PUT("/banners/:id", contentH.UpdateBanner)
			content.DELETE("/banners/:id", contentH.DeleteBanner)
			content.POST("/header-links", contentH.CreateHeaderLink)
			content.DELETE("/header-links/:id", contentH.DeleteHeaderLink)
			content.POST("/footer-links", contentH.CreateFooterLink)
			content.DELETE("/footer-links/:id", contentH.DeleteFooterLink)
			content.PUT("/sections", contentH.UpsertTextSection)
		}
	}

	return r
}
