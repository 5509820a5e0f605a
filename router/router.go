package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sourdough-shop/auth"
	"github.com/yeremiapane/sourdough-shop/controllers"
	"github.com/yeremiapane/sourdough-shop/middlewares"
	"github.com/yeremiapane/sourdough-shop/services"
	"github.com/yeremiapane/sourdough-shop/sheets"
)

func SetupRouter(store *services.InventoryStore, client *sheets.Client, verifier auth.Verifier) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	inventoryCtrl := controllers.NewInventoryController(store)
	orderCtrl := controllers.NewOrderController(store, client)
	adminCtrl := controllers.NewAdminController(store, client)
	authCtrl := controllers.NewAuthController(verifier)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Storefront: customers browse and order without any account.
	r.GET("/inventory", inventoryCtrl.GetStorefront)
	r.POST("/orders", orderCtrl.CreateOrder)

	// Live feed for open storefront pages.
	r.GET("/live/ws", controllers.LiveHandler)

	// Login gets its own strict limiter.
	login := r.Group("/admin")
	login.Use(middlewares.NewStrictRateLimiter())
	{
		login.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminAuthMiddleware())

	admin.GET("/inventory", adminCtrl.GetInventory)
	admin.PATCH("/inventory/:bread_id", adminCtrl.UpdateInventory)
	admin.POST("/inventory/refresh", adminCtrl.RefreshInventory)
	admin.PUT("/pickup-date", adminCtrl.SetPickupDate)

	return r
}
