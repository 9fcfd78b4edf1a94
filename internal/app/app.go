package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gabrielbeloni06/zytechhub/docs"
	"github.com/gabrielbeloni06/zytechhub/internal/cache"
	"github.com/gabrielbeloni06/zytechhub/internal/config"
	"github.com/gabrielbeloni06/zytechhub/internal/handlers"
	"github.com/gabrielbeloni06/zytechhub/internal/middleware"
	"github.com/gabrielbeloni06/zytechhub/internal/pdf"
	"github.com/gabrielbeloni06/zytechhub/internal/places"
	"github.com/gabrielbeloni06/zytechhub/internal/repositories"
	"github.com/gabrielbeloni06/zytechhub/internal/routes"
	"github.com/gabrielbeloni06/zytechhub/internal/services"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Erro ao fechar o banco: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("Erro no ping do banco: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	passwordResetRepo := repositories.NewPasswordResetRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	userService := services.NewUserService(userRepo, emailService, authService)
	passwordResetService := services.NewPasswordResetService(userRepo, passwordResetRepo, emailService, authService)

	placesClient := places.NewClient(cfg.Places.APIKey)
	hunterService := services.NewHunterService(placesClient)
	leadService := services.NewLeadService(leadRepo)
	templateService := services.NewTemplateService(templateRepo, leadRepo)

	summaryCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.SummaryTTL)
	dashboardService := services.NewDashboardService(orgRepo, submissionRepo, summaryCache)

	// Telegram é opcional; sem token o notifier vira no-op
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	var notifier services.Notifier
	if telegramService != nil {
		notifier = telegramService
	}
	submissionService := services.NewSubmissionService(submissionRepo, notifier)

	pdfGen := pdf.NewReportGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	passwordHandler := handlers.NewPasswordHandler(passwordResetService)
	userHandler := handlers.NewUserHandler(userService)
	hunterHandler := handlers.NewHunterHandler(hunterService, leadService)
	leadHandler := handlers.NewLeadHandler(leadService, templateService, pdfGen, userService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	formsHandler := handlers.NewFormsHandler(submissionService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		passwordHandler,
		userHandler,
		hunterHandler,
		leadHandler,
		templateHandler,
		dashboardHandler,
		formsHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Servidor rodando em %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Erro ao subir o servidor: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
