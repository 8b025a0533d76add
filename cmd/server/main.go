package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sachin22-web/sachin-portfolio/adapters/event"
	httpAdapter "github.com/sachin22-web/sachin-portfolio/adapters/http"
	"github.com/sachin22-web/sachin-portfolio/adapters/media_storage"
	"github.com/sachin22-web/sachin-portfolio/adapters/persistence"
	authUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/auth"
	blogUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/blog"
	certificationUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/certification"
	contentUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/content"
	experienceUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/experience"
	mediaUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/media"
	messageUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/message"
	projectUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/project"
	resumeUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/resume"
	"github.com/sachin22-web/sachin-portfolio/internal/config"
	"github.com/sachin22-web/sachin-portfolio/pkg/auth"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
	"github.com/sachin22-web/sachin-portfolio/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Warn("Tracing disabled: " + err.Error())
	} else {
		defer tracerProvider.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	adminRepo := persistence.NewPostgresAdminRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool, appLogger)
	contentRepo := persistence.NewPostgresContentRepo(dbPool, appLogger)
	contentCache := persistence.NewRedisContentCache(redisClient)
	resumeRepo := persistence.NewPostgresResumeRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(adminRepo, jwtSvc, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	blogUseCase := blogUC.NewUseCase(blogRepo, appLogger)
	contentUseCase := contentUC.NewUseCase(contentRepo, contentCache, kafkaClient, appLogger)
	resumeUseCase := resumeUC.NewUseCase(resumeRepo, appLogger)
	experienceUseCase := experienceUC.NewUseCase(experienceRepo, appLogger)
	certificationUseCase := certificationUC.NewUseCase(certificationRepo, appLogger)
	messageUseCase := messageUC.NewUseCase(messageRepo, appLogger)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)

	// Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		getProjectUseCase,
		listProjectsUseCase,
		appLogger,
	)
	blogHandler := httpAdapter.NewBlogHandler(blogUseCase, appLogger)
	contentHandler := httpAdapter.NewContentHandler(contentUseCase, appLogger)
	resumeHandler := httpAdapter.NewResumeHandler(resumeUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	certificationHandler := httpAdapter.NewCertificationHandler(certificationUseCase, appLogger)
	messageHandler := httpAdapter.NewMessageHandler(messageUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadMediaUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)
	contactLimiter := httpAdapter.NewRateLimiter(cfg.Contact.RateLimit, cfg.Contact.RateLimitWindow)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					adminID, ok := httpAdapter.GetAdminIDFromGinContext(c)
					if !ok {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot get admin id from context"})
						return
					}
					c.JSON(http.StatusOK, gin.H{"status": "OK", "admin_id": adminID})
				})

				projects := adminPrivate.Group("/projects")
				{
					projects.POST("", projectHandler.CreateProject)
					projects.GET("", projectHandler.ListProjects)
					projects.GET("/:ref", projectHandler.GetProject)
					projects.PUT("/:ref", projectHandler.UpdateProject)
					projects.DELETE("/:ref", projectHandler.DeleteProject)
				}

				blogs := adminPrivate.Group("/blogs")
				{
					blogs.POST("", blogHandler.CreateBlog)
					blogs.GET("", blogHandler.ListBlogs)
					blogs.GET("/:ref", blogHandler.GetBlog)
					blogs.PATCH("/:ref", blogHandler.UpdateBlog)
					blogs.DELETE("/:ref", blogHandler.DeleteBlog)
				}

				contentRoutes := adminPrivate.Group("/content")
				{
					contentRoutes.PUT("/:key", contentHandler.UpsertSection)
					contentRoutes.GET("/:key", contentHandler.GetSection)
				}

				resumes := adminPrivate.Group("/resumes")
				{
					resumes.POST("", resumeHandler.CreateResume)
					resumes.GET("", resumeHandler.ListResumes)
					resumes.GET("/:id", resumeHandler.GetResume)
					resumes.PATCH("/:id", resumeHandler.UpdateResume)
					resumes.DELETE("/:id", resumeHandler.DeleteResume)
					resumes.PATCH("/:id/activate", resumeHandler.ActivateResume)
				}

				experiences := adminPrivate.Group("/experiences")
				{
					experiences.POST("", experienceHandler.CreateExperience)
					experiences.GET("", experienceHandler.ListExperiences)
					experiences.GET("/:id", experienceHandler.GetExperience)
					experiences.PATCH("/:id", experienceHandler.UpdateExperience)
					experiences.DELETE("/:id", experienceHandler.DeleteExperience)
				}

				certifications := adminPrivate.Group("/certifications")
				{
					certifications.POST("", certificationHandler.CreateCertification)
					certifications.GET("", certificationHandler.ListCertifications)
					certifications.GET("/:id", certificationHandler.GetCertification)
					certifications.PATCH("/:id", certificationHandler.UpdateCertification)
					certifications.DELETE("/:id", certificationHandler.DeleteCertification)
				}

				messages := adminPrivate.Group("/messages")
				{
					messages.GET("", messageHandler.ListMessages)
					messages.PATCH("/:id/read", messageHandler.MarkMessageRead)
					messages.DELETE("/:id", messageHandler.DeleteMessage)
				}

				adminPrivate.POST("/media", mediaHandler.UploadMedia)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/projects", projectHandler.ListProjects)
			public.GET("/projects/:ref", projectHandler.GetProject)
			public.GET("/blogs", blogHandler.ListPublicBlogs)
			public.GET("/blogs/:slug", blogHandler.GetPublicBlog)
			public.GET("/content/:key", contentHandler.GetSection)
			public.GET("/resume/active", resumeHandler.GetActiveResume)
			public.GET("/experiences", experienceHandler.ListExperiences)
			public.GET("/certifications", certificationHandler.ListCertifications)
			public.POST("/contact", contactLimiter.Middleware(), messageHandler.SubmitMessage)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
