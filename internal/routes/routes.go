package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrielbeloni06/zytechhub/internal/handlers"
	"github.com/gabrielbeloni06/zytechhub/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	userHandler *handlers.UserHandler,
	hunterHandler *handlers.HunterHandler,
	leadHandler *handlers.LeadHandler,
	templateHandler *handlers.TemplateHandler,
	dashboardHandler *handlers.DashboardHandler,
	formsHandler *handlers.FormsHandler,
) *gin.Engine {

	// ---- público
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.POST("/register", authHandler.Register)
	r.POST("/password/forgot", passwordHandler.Forgot)
	r.POST("/password/reset", passwordHandler.Reset)

	// formulário de orçamento do site
	r.POST("/public/orcamento", formsHandler.Intake)

	// ---- protegido
	r.Use(middleware.AuthMiddleware())

	api := r.Group("/api")
	{
		api.GET("/me", userHandler.Me)

		// HUNTER (busca + salvamento)
		api.POST("/hunter", hunterHandler.Search)
		api.POST("/hunter/save", hunterHandler.Save)
		api.POST("/hunter/save-bulk", hunterHandler.SaveBulk)

		// LEADS salvos
		leads := api.Group("/leads")
		{
			leads.GET("", leadHandler.List)
			leads.POST("/:id/status", leadHandler.UpdateStatus)
			leads.POST("/:id/contact", leadHandler.Contact)
			leads.DELETE("/:id", leadHandler.Delete)
			leads.GET("/export/pdf", leadHandler.ExportPDF)
		}

		// TEMPLATES de outreach
		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.List)
			templates.POST("", templateHandler.Create)
			templates.DELETE("/:id", templateHandler.Delete)
		}

		// DASHBOARD
		api.GET("/dashboard/summary", dashboardHandler.GetSummary)

		// CAIXA DE ENTRADA (forms)
		forms := api.Group("/forms")
		{
			forms.GET("", formsHandler.List)
			forms.GET("/:id", formsHandler.Get)
			forms.POST("/:id/viewed", formsHandler.MarkViewed)
		}

		// USERS (admin)
		users := api.Group("/users", middleware.RequireAdmin())
		{
			users.GET("", userHandler.List)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return r
}
