package app

import (
	"ai_maturity_backend/docs"
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/middleware"
	"ai_maturity_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	public := router.Group("/api/v1")
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authed.GET("/auth/me", c.auth.Profile)

		authed.GET("/companies", c.company.List)
		authed.POST("/companies", c.company.Create)

		authed.GET("/companies/:companyId/users", c.user.ListByCompany)
		authed.PUT("/companies/:companyId/users/:userId/role", c.user.UpdateRole)
		authed.DELETE("/companies/:companyId/users/:userId", c.user.RemoveAccess)
		authed.POST("/users/invite", c.user.Invite)
		authed.PUT("/users/password", c.user.ResetPassword)
		authed.POST("/users/avatar", c.user.UploadAvatar)

		authed.GET("/companies/:companyId/areas", c.businessArea.List)
		authed.POST("/companies/:companyId/areas", c.businessArea.CreateArea)
		authed.PUT("/companies/:companyId/areas/:areaId", c.businessArea.UpdateArea)
		authed.DELETE("/companies/:companyId/areas/:areaId", c.businessArea.DeleteArea)
		authed.POST("/companies/:companyId/areas/:areaId/subareas", c.businessArea.CreateSubArea)
		authed.PUT("/companies/:companyId/subareas/:subAreaId", c.businessArea.UpdateSubArea)
		authed.DELETE("/companies/:companyId/subareas/:subAreaId", c.businessArea.DeleteSubArea)

		authed.GET("/companies/:companyId/people", c.person.List)
		authed.POST("/companies/:companyId/people", c.person.Create)
		authed.PUT("/companies/:companyId/people/:personId", c.person.Update)

		authed.GET("/references/archetypes", c.reference.Archetypes)
		authed.GET("/references/technical-levels", c.reference.TechnicalLevels)
		authed.GET("/references/business-levels", c.reference.BusinessLevels)

		authed.POST("/applications", c.application.Create)
		authed.GET("/companies/:companyId/applications", c.application.ListByCompany)

		authed.GET("/assessment/questions", c.assessment.GetQuestions)
		authed.POST("/assessment/init", c.assessment.Init)
		authed.PUT("/assessment/:id/answers", c.assessment.SaveAnswer)
		authed.POST("/assessment/:id/finalize", c.assessment.Finalize)
		authed.GET("/assessment/:id", c.assessment.Get)
	}
}
