package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/configs"
	"github.com/muhammadnuman-eng/shawarmabackend/controllers"
	"github.com/muhammadnuman-eng/shawarmabackend/middlewares"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/notify"
	"github.com/muhammadnuman-eng/shawarmabackend/repository"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	promoRepo := repository.NewPromoRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services — notification provider selected once at startup
	pricing := services.NewPricingCalculator(cfg.DeliveryFee, cfg.PlatformFee, cfg.GSTRate)
	notifier := notify.FromProvider(cfg.NotifyProvider)
	settingSvc := services.NewSettingService(settingRepo)
	authSvc := services.NewAuthService(userRepo, settingSvc, cfg.JWTSecret, cfg.JWTTTL)
	promoSvc := services.NewPromoService(promoRepo, pricing)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, pricing)
	orderSvc := services.NewOrderService(
		db, orderRepo, catalogRepo, addrRepo, userRepo,
		promoSvc, pricing, notifier,
		configs.SystemUserEmail, cfg.EstimatedDelivery,
	)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc, promoSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	addrCtrl := controllers.NewAddressController(addrRepo)
	adminCtrl := controllers.NewAdminController(orderSvc, settingSvc, orderRepo, promoRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/products", catalogCtrl.Products)
	r.GET("/products/:id", catalogCtrl.ProductDetail)

	// Cart / Orders / Payment (authenticated)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart", cartCtrl.Add)
		u.PUT("/cart/:id", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/:id", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)
		u.POST("/cart/promo", cartCtrl.ApplyPromo)

		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
		u.GET("/orders/:id/track", orderCtrl.Track)
		u.POST("/orders/:id/reorder", orderCtrl.Reorder)

		u.POST("/payment/process", paymentCtrl.Process)

		u.GET("/addresses", addrCtrl.List)
		u.POST("/addresses", addrCtrl.Create)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.POST("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.POST("/promotions", adminCtrl.CreatePromo)
		admin.GET("/settings/registration", adminCtrl.RegistrationSetting)
		admin.PUT("/settings/registration", adminCtrl.SetRegistrationSetting)
	}
}
