package routes

import (
	"github.com/buyolex/buyolex-api/controllers"
	"github.com/buyolex/buyolex-api/middlewares"
	"github.com/gin-gonic/gin"
)

func SettingsRoutes(server *gin.Engine) {
	server.GET("/api/site-settings", controllers.GetSiteSettings)
	server.GET("/landing-page", controllers.GetLandingPage)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.PUT("/api/site-settings", controllers.UpdateSiteSettings)
		admin.POST("/email-config", controllers.CreateEmailConfig)
		admin.POST("/marketing-integration", controllers.CreateMarketingIntegration)
		admin.GET("/marketing-events", controllers.GetMarketingEvents)
	}
}
