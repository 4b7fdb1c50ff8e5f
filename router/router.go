package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chikoci/Restaurant-Orders/controllers"
	"github.com/chikoci/Restaurant-Orders/database"
	"github.com/chikoci/Restaurant-Orders/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	// 30 request per detik per IP, burst 60
	limiter := middlewares.NewRateLimiter(30, 60)
	r.Use(limiter.RateLimit())

	store := database.NewStore(db)
	reportCtrl := controllers.NewReportController(store)
	customCtrl := controllers.NewCustomViewController(store)
	exportCtrl := controllers.NewExportController(store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api/v1")
	{
		reportsGroup := api.Group("/reports")
		{
			reportsGroup.GET("/dashboard", reportCtrl.GetDashboard)
			reportsGroup.GET("/customers", reportCtrl.GetCustomerReport)
			reportsGroup.GET("/categories", reportCtrl.GetCategoryReport)
			reportsGroup.GET("/payment-methods", reportCtrl.GetPaymentReport)
			reportsGroup.GET("/tables", reportCtrl.GetTableReport)
			reportsGroup.GET("/menu", reportCtrl.GetMenuReport)
			reportsGroup.GET("/orders", reportCtrl.GetOrderReport)
			reportsGroup.GET("/order-details", reportCtrl.GetOrderDetailReport)
			reportsGroup.GET("/reservations", reportCtrl.GetReservationReport)
			reportsGroup.GET("/reviews", reportCtrl.GetReviewReport)
			reportsGroup.GET("/:family/export", exportCtrl.ExportFamily)
		}

		custom := api.Group("/custom")
		{
			custom.GET("/recipes", customCtrl.ListRecipes)
			custom.GET("/join", customCtrl.BuildView)
		}
	}

	return r
}
