package routes

import (
	"partnerdash-be/config"
	"partnerdash-be/internal/handlers"
	"partnerdash-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles every API handler the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Analytics  *handlers.AnalyticsHandler
	Engagement *handlers.EngagementHandler
	Insights   *handlers.InsightsHandler
	Partners   *handlers.PartnerHandler
	Cron       *handlers.CronHandler
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, h Handlers) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", handlers.Health)
		public.POST("/auth/session", h.Auth.CreateSession)

		// the slug itself is the partner's capability link
		public.GET("/partners/:slug", h.Partners.GetPartner)
	}

	// Dashboard routes
	dashboard := router.Group("/api")
	dashboard.Use(middleware.DashboardAuth(cfg))
	{
		dashboard.GET("/analytics", h.Analytics.GetAnalytics)
		dashboard.GET("/mixmax", h.Engagement.GetEngagement)
		dashboard.POST("/refresh/mixmax", h.Engagement.RefreshEngagement)
		dashboard.GET("/insights/:cohort", h.Insights.GetCohort)

		dashboard.GET("/partners", h.Partners.ListPartners)
		dashboard.GET("/partners/search", h.Partners.SearchPartners)
		dashboard.POST("/counselors", h.Partners.CreateCounselor)
		dashboard.PATCH("/counselors/:recordId", h.Partners.UpdateCounselor)
		dashboard.POST("/conversations", h.Partners.AddConversation)
	}

	// Scheduler routes
	cron := router.Group("/api/cron")
	cron.Use(middleware.CronAuth(cfg.CronSecret))
	{
		cron.GET("/mixmax", h.Cron.RefreshMixmax)
		cron.GET("/daily-check", h.Cron.DailyCheck)
	}
}
