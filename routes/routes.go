package routes

import (
	"os"

	"movecrm-backend/config"
	"movecrm-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowedOrigins = append(allowedOrigins, frontend)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Static localization table for the dashboard
		api.GET("/translations", controllers.GetTranslations)

		// Health check
		api.GET("/health", controllers.HealthCheck)
	}

	return r
}
