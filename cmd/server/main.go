package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portify/portify-api/adapters/event"
	httpAdapter "github.com/portify/portify-api/adapters/http"
	"github.com/portify/portify-api/adapters/media_storage"
	"github.com/portify/portify-api/adapters/persistence"
	authUC "github.com/portify/portify-api/internal/application/usecase/auth"
	dashboardUC "github.com/portify/portify-api/internal/application/usecase/dashboard"
	portfolioUC "github.com/portify/portify-api/internal/application/usecase/portfolio"
	profileUC "github.com/portify/portify-api/internal/application/usecase/profile"
	sectionUC "github.com/portify/portify-api/internal/application/usecase/section"
	"github.com/portify/portify-api/internal/config"
	"github.com/portify/portify-api/internal/domain/education"
	"github.com/portify/portify-api/internal/domain/experience"
	"github.com/portify/portify-api/internal/domain/project"
	"github.com/portify/portify-api/internal/domain/skill"
	"github.com/portify/portify-api/pkg/auth"
	"github.com/portify/portify-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Portify API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("FATAL: cannot load config: %v", err))
	}

	log := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize uploader", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, log)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, log)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, log)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	sessionStore := persistence.NewSessionStore(redisClient)
	portfolioCache := persistence.NewPortfolioCache(redisClient, cfg.Redis.CacheTTL, log)

	// Use Cases
	signUpUseCase := authUC.NewSignUpUseCase(userRepo, profileRepo, jwtSvc, log)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, log)
	logoutUseCase := authUC.NewLogoutUseCase(sessionStore, jwtSvc, log)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, uploader, portfolioCache, kafkaClient, log)
	skillUseCase := sectionUC.NewUseCase[*skill.Skill](skillRepo, portfolioCache, kafkaClient, log)
	projectUseCase := sectionUC.NewUseCase[*project.Project](projectRepo, portfolioCache, kafkaClient, log)
	experienceUseCase := sectionUC.NewUseCase[*experience.Experience](experienceRepo, portfolioCache, kafkaClient, log)
	educationUseCase := sectionUC.NewUseCase[*education.Education](educationRepo, portfolioCache, kafkaClient, log)
	getPortfolioUseCase := portfolioUC.NewGetPortfolioUseCase(
		profileRepo, skillRepo, projectRepo, experienceRepo, educationRepo, portfolioCache, log,
	)
	dashboardUseCase := dashboardUC.NewDashboardUseCase(
		profileRepo, skillRepo, projectRepo, experienceRepo, educationRepo, log,
	)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(signUpUseCase, loginUseCase, logoutUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, log)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(getPortfolioUseCase)
	dashboardHandler := httpAdapter.NewDashboardHandler(dashboardUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, sessionStore, log)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/meta/skill-categories", httpAdapter.SkillCategories)

		// Public portfolio page
		api.GET("/u/:username", portfolioHandler.GetPublic)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.SignUp)
			authGroup.POST("/login", authHandler.SignIn)
			authGroup.POST("/logout", authMiddleware, authHandler.SignOut)
		}

		me := api.Group("/me")
		me.Use(authMiddleware)
		{
			me.GET("/profile", profileHandler.GetProfile)
			me.PUT("/profile", profileHandler.UpdateProfile)
			me.POST("/profile/avatar", profileHandler.UpdateAvatar)

			me.GET("/portfolio", portfolioHandler.GetOwner)
			me.GET("/dashboard", dashboardHandler.Get)

			skills := me.Group("/skills")
			{
				skills.GET("", skillHandler.List)
				skills.POST("", skillHandler.Add)
				skills.PUT("/:id", skillHandler.Update)
				skills.DELETE("/:id", skillHandler.Delete)
			}

			projects := me.Group("/projects")
			{
				projects.GET("", projectHandler.List)
				projects.POST("", projectHandler.Add)
				projects.PUT("/:id", projectHandler.Update)
				projects.DELETE("/:id", projectHandler.Delete)
			}

			experiences := me.Group("/experiences")
			{
				experiences.GET("", experienceHandler.List)
				experiences.POST("", experienceHandler.Add)
				experiences.PUT("/:id", experienceHandler.Update)
				experiences.DELETE("/:id", experienceHandler.Delete)
			}

			educationGroup := me.Group("/education")
			{
				educationGroup.GET("", educationHandler.List)
				educationGroup.POST("", educationHandler.Add)
				educationGroup.PUT("/:id", educationHandler.Update)
				educationGroup.DELETE("/:id", educationHandler.Delete)
			}
		}
	}

	log.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("cannot run server", err)
	}
}
