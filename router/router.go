package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/airavatatech/mings-backend/controllers"
	"github.com/airavatatech/mings-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	customerCtrl := controllers.NewCustomerController(db)
	whatsappCtrl := controllers.NewWhatsAppController(db)
	adminCtrl := controllers.NewAdminController()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// Admin session
		adminAuth := api.Group("/admin")
		adminAuth.POST("/login", middlewares.NewStrictRateLimiter(), adminCtrl.Login)
		adminAuth.POST("/logout", adminCtrl.Logout)
		adminAuth.GET("/check", adminCtrl.Check)

		// Menu catalog
		api.GET("/categories", menuCtrl.GetCategories)
		api.GET("/menu-items", menuCtrl.GetAllMenuItems)
		api.GET("/menu-items/category/:category", menuCtrl.GetMenuItemsByCategory)
		api.GET("/menu-items/:id", menuCtrl.GetMenuItemByID)
		api.POST("/menu-items", middlewares.AdminAuthMiddleware(), menuCtrl.CreateMenuItem)

		// Cart (session-scoped)
		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart", cartCtrl.AddToCart)
		api.DELETE("/cart/:id", cartCtrl.RemoveFromCart)
		api.DELETE("/cart", cartCtrl.ClearCart)

		// Customers
		api.GET("/customers/phone/:phoneNumber", customerCtrl.GetCustomerByPhone)
		api.POST("/customers", customerCtrl.RegisterCustomer)
		api.POST("/customers/visit/:phoneNumber", customerCtrl.RecordVisit)

		// Admin-only
		admin := api.Group("/")
		admin.Use(middlewares.AdminAuthMiddleware())
		{
			admin.GET("/customers", customerCtrl.GetAllCustomers)
			admin.DELETE("/customers", customerCtrl.PurgeCustomers)
			admin.GET("/whatsapp-settings", whatsappCtrl.GetSettings)
			admin.POST("/whatsapp-settings", whatsappCtrl.SaveSettings)
		}
	}

	return r
}
