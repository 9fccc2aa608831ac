package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/localmarket/backend/internal/application/catalog"
	identityapp "github.com/localmarket/backend/internal/application/identity"
	mediaapp "github.com/localmarket/backend/internal/application/media"
	orgapp "github.com/localmarket/backend/internal/application/organization"
	shopapp "github.com/localmarket/backend/internal/application/shop"
	taxonomyapp "github.com/localmarket/backend/internal/application/taxonomy"
	"github.com/localmarket/backend/internal/infrastructure/cache"
	"github.com/localmarket/backend/internal/infrastructure/config"
	"github.com/localmarket/backend/internal/infrastructure/event"
	"github.com/localmarket/backend/internal/infrastructure/imaging"
	"github.com/localmarket/backend/internal/infrastructure/logger"
	"github.com/localmarket/backend/internal/infrastructure/persistence"
	"github.com/localmarket/backend/internal/infrastructure/storage"
	"github.com/localmarket/backend/internal/interfaces/http/handler"
	"github.com/localmarket/backend/internal/interfaces/http/middleware"
	"github.com/localmarket/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting marketplace backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	shopTypeRepo := persistence.NewGormShopTypeRepository(db.DB)
	shopSubtypeRepo := persistence.NewGormShopSubtypeRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	subcategoryRepo := persistence.NewGormSubcategoryRepository(db.DB)
	associationRepo := persistence.NewGormAssociationRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	packageRepo := persistence.NewGormPackageRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	ratingRepo := persistence.NewGormRatingRepository(db.DB)
	organizationRepo := persistence.NewGormOrganizationRepository(db.DB)
	participantRepo := persistence.NewGormParticipantRepository(db.DB)
	transferRepo := persistence.NewGormTransferRequestRepository(db.DB)
	joinRequestRepo := persistence.NewGormJoinRequestRepository(db.DB)
	publicationRepo := persistence.NewGormPublicationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize event bus
	eventBus := event.NewInMemoryEventBus(log)

	// Optional Redis cache for taxonomy list endpoints
	var taxonomyCache taxonomyapp.ListCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unreachable, taxonomy cache disabled", zap.Error(err))
		} else {
			taxonomyCache = cache.NewRedisTaxonomyCache(redisClient, cfg.Redis.ListTTL, log)
			log.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr()))
		}
		cancel()
	}

	// Initialize application services
	taxonomyService := taxonomyapp.NewService(shopTypeRepo, shopSubtypeRepo, shopRepo, taxonomyCache)
	categoryService := catalogapp.NewCategoryService(categoryRepo, subcategoryRepo, shopTypeRepo, eventBus)
	subcategoryService := catalogapp.NewSubcategoryService(subcategoryRepo, categoryRepo, eventBus)
	associationService := catalogapp.NewAssociationService(associationRepo, shopTypeRepo, categoryRepo, subcategoryRepo)
	productService := catalogapp.NewProductService(productRepo, subcategoryRepo, shopRepo)
	packageService := catalogapp.NewPackageService(packageRepo, productRepo, shopRepo)
	shopService := shopapp.NewService(shopRepo, shopTypeRepo, shopSubtypeRepo, userRepo, eventBus)
	ratingService := shopapp.NewRatingService(ratingRepo, shopRepo, eventBus)
	organizationService := orgapp.NewService(organizationRepo, participantRepo, userRepo, eventBus)
	membershipService := orgapp.NewMembershipService(participantRepo, joinRequestRepo, organizationRepo)
	transferService := orgapp.NewTransferService(transferRepo, participantRepo, organizationRepo, userRepo, eventBus)
	publicationService := orgapp.NewPublicationService(publicationRepo, organizationRepo)
	userService := identityapp.NewUserService(userRepo)

	// Image storage driver
	var imageStore mediaapp.ImageStore
	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3ImageStore(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize S3 image store", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Store.EnsureBucket(ensureCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure S3 bucket", zap.Error(err))
		}
		cancel()
		imageStore = s3Store
		log.Info("S3 image store ready", zap.String("bucket", cfg.Storage.S3Bucket))
	default:
		localStore, err := storage.NewLocalImageStore(&cfg.Storage)
		if err != nil {
			log.Fatal("Failed to initialize local image store", zap.Error(err))
		}
		imageStore = localStore
		log.Info("Local image store ready", zap.String("dir", localStore.Dir()))
	}

	// Image upload pipeline: every image-bearing entity registers a profile
	processor := imaging.NewWebPProcessor(&cfg.Media)
	imageService := mediaapp.NewImageService(processor, imageStore)
	imageService.Register("shop", "shop", mediaapp.NewShopBinder(shopRepo))
	imageService.Register("product", "product", mediaapp.NewProductBinder(productRepo))
	imageService.Register("package", "package", mediaapp.NewPackageBinder(packageRepo))
	imageService.Register("organization", "organization", mediaapp.NewOrganizationBinder(organizationRepo))
	imageService.Register("publication", "publication", mediaapp.NewPublicationBinder(publicationRepo))

	// Cascading shop deletes also remove stored images
	cleanupHandler := mediaapp.NewCleanupHandler(imageStore, log)
	eventBus.Subscribe(cleanupHandler)

	// Initialize HTTP handlers
	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	subcategoryHandler := handler.NewSubcategoryHandler(subcategoryService)
	associationHandler := handler.NewAssociationHandler(associationService)
	productHandler := handler.NewProductHandler(productService)
	packageHandler := handler.NewPackageHandler(packageService)
	shopHandler := handler.NewShopHandler(shopService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	organizationHandler := handler.NewOrganizationHandler(organizationService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	transferHandler := handler.NewTransferHandler(transferService)
	publicationHandler := handler.NewPublicationHandler(publicationService)
	userHandler := handler.NewUserHandler(userService)
	uploadHandler := handler.NewUploadHandler(imageService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack; order matters
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check outside API versioning
	engine.GET("/health", healthHandler(db))

	// Serve locally stored images
	if cfg.Storage.Driver != "s3" {
		if localStore, ok := imageStore.(*storage.LocalImageStore); ok {
			engine.Static(cfg.Storage.PublicBase, localStore.Dir())
		}
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Taxonomy domain: shop types and subtypes
	taxonomyRoutes := router.NewDomainGroup("taxonomy", "/taxonomy")
	taxonomyRoutes.POST("/types", taxonomyHandler.CreateType)
	taxonomyRoutes.GET("/types", taxonomyHandler.ListTypes)
	taxonomyRoutes.GET("/types/active", taxonomyHandler.ListActiveTypes)
	taxonomyRoutes.GET("/types/:id", taxonomyHandler.GetType)
	taxonomyRoutes.PUT("/types/:id", taxonomyHandler.UpdateType)
	taxonomyRoutes.DELETE("/types/:id", taxonomyHandler.DeactivateType)
	taxonomyRoutes.POST("/types/:id/activate", taxonomyHandler.ActivateType)
	taxonomyRoutes.POST("/types/:id/verify", taxonomyHandler.VerifyType)
	taxonomyRoutes.GET("/types/:id/subtypes", taxonomyHandler.ListSubtypesByType)
	taxonomyRoutes.GET("/types/:id/categories", associationHandler.ListTypeCategories)
	taxonomyRoutes.DELETE("/types/:id/categories", associationHandler.UnlinkTypeCategoriesByType)
	taxonomyRoutes.POST("/subtypes", taxonomyHandler.CreateSubtype)
	taxonomyRoutes.GET("/subtypes/:id", taxonomyHandler.GetSubtype)
	taxonomyRoutes.PUT("/subtypes/:id", taxonomyHandler.UpdateSubtype)
	taxonomyRoutes.DELETE("/subtypes/:id", taxonomyHandler.DeactivateSubtype)
	taxonomyRoutes.POST("/subtypes/:id/activate", taxonomyHandler.ActivateSubtype)

	// Catalog domain: categories, subcategories, products, packages
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/categories", categoryHandler.Create)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:id", categoryHandler.GetByID)
	catalogRoutes.PUT("/categories/:id", categoryHandler.Update)
	catalogRoutes.POST("/categories/:id/verify", categoryHandler.Verify)
	catalogRoutes.POST("/categories/:id/unverify", categoryHandler.Unverify)
	catalogRoutes.GET("/categories/:id/affected", categoryHandler.CheckAffected)
	catalogRoutes.DELETE("/categories/:id", categoryHandler.Delete)
	catalogRoutes.DELETE("/categories/:id/cascade", categoryHandler.DeleteCascade)
	catalogRoutes.GET("/categories/:id/subcategories", subcategoryHandler.ListByCategory)
	catalogRoutes.GET("/categories/:id/subcategory-links", associationHandler.ListCategorySubcategories)
	catalogRoutes.DELETE("/categories/:id/subcategory-links", associationHandler.UnlinkCategorySubcategoriesByCategory)
	catalogRoutes.POST("/subcategories", subcategoryHandler.Create)
	catalogRoutes.GET("/subcategories", subcategoryHandler.List)
	catalogRoutes.POST("/subcategories/migrate", subcategoryHandler.MigrateProducts)
	catalogRoutes.GET("/subcategories/:id", subcategoryHandler.GetByID)
	catalogRoutes.PUT("/subcategories/:id", subcategoryHandler.Update)
	catalogRoutes.POST("/subcategories/:id/verify", subcategoryHandler.Verify)
	catalogRoutes.POST("/subcategories/:id/unverify", subcategoryHandler.Unverify)
	catalogRoutes.GET("/subcategories/:id/affected", subcategoryHandler.CheckAffectedProducts)
	catalogRoutes.DELETE("/subcategories/:id", subcategoryHandler.Delete)
	catalogRoutes.DELETE("/subcategories/:id/cascade", subcategoryHandler.DeleteCascade)
	catalogRoutes.GET("/subcategories/:id/products", productHandler.ListBySubcategory)
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/packages", packageHandler.Create)
	catalogRoutes.GET("/packages", packageHandler.List)
	catalogRoutes.GET("/packages/:id", packageHandler.GetByID)
	catalogRoutes.PUT("/packages/:id", packageHandler.Update)
	catalogRoutes.DELETE("/packages/:id", packageHandler.Delete)

	// Association links created or removed by their own ID
	associationRoutes := router.NewDomainGroup("associations", "/associations")
	associationRoutes.POST("/type-categories", associationHandler.LinkTypeCategory)
	associationRoutes.DELETE("/type-categories/:id", associationHandler.UnlinkTypeCategory)
	associationRoutes.POST("/category-subcategories", associationHandler.LinkCategorySubcategory)
	associationRoutes.POST("/category-subcategories/batch", associationHandler.LinkSubcategoriesBatch)
	associationRoutes.DELETE("/category-subcategories/:id", associationHandler.UnlinkCategorySubcategory)

	// Shop domain
	shopRoutes := router.NewDomainGroup("shop", "/shops")
	shopRoutes.POST("", shopHandler.Create)
	shopRoutes.GET("", shopHandler.List)
	shopRoutes.GET("/by-type/:id", shopHandler.ListByType)
	shopRoutes.GET("/by-subtype/:id", shopHandler.ListBySubtype)
	shopRoutes.GET("/by-owner/:id", shopHandler.ListByOwner)
	shopRoutes.GET("/:id", shopHandler.GetByID)
	shopRoutes.PUT("/:id", shopHandler.Update)
	shopRoutes.PUT("/:id/classification", shopHandler.Reclassify)
	shopRoutes.POST("/:id/verify", shopHandler.Verify)
	shopRoutes.DELETE("/:id", shopHandler.Delete)
	shopRoutes.DELETE("/:id/cascade", shopHandler.DeleteWithProducts)
	shopRoutes.GET("/:id/products", productHandler.ListByShop)
	shopRoutes.GET("/:id/packages", packageHandler.ListByShop)
	shopRoutes.POST("/:id/ratings", ratingHandler.Rate)
	shopRoutes.GET("/:id/ratings", ratingHandler.ListByShop)
	shopRoutes.GET("/:id/ratings/:user_id", ratingHandler.GetByShopAndUser)

	ratingRoutes := router.NewDomainGroup("rating", "/ratings")
	ratingRoutes.DELETE("/:id", ratingHandler.Delete)

	// Organization domain
	organizationRoutes := router.NewDomainGroup("organization", "/organizations")
	organizationRoutes.POST("", organizationHandler.Create)
	organizationRoutes.GET("", organizationHandler.List)
	organizationRoutes.GET("/by-participant/:id", organizationHandler.ListByParticipant)
	organizationRoutes.GET("/:id", organizationHandler.GetByID)
	organizationRoutes.PUT("/:id", organizationHandler.Update)
	organizationRoutes.POST("/:id/approve", organizationHandler.Approve)
	organizationRoutes.DELETE("/:id", organizationHandler.Delete)
	organizationRoutes.GET("/:id/participants", membershipHandler.ListParticipants)
	organizationRoutes.DELETE("/:id/participants/by-user/:user_id", membershipHandler.RemoveParticipantByUser)
	organizationRoutes.POST("/:id/join-requests", membershipHandler.RequestJoin)
	organizationRoutes.GET("/:id/join-requests", membershipHandler.ListJoinRequestsByOrg)
	organizationRoutes.POST("/:id/transfers", transferHandler.Create)
	organizationRoutes.GET("/:id/transfers", transferHandler.ListByOrg)
	organizationRoutes.POST("/:id/publications", publicationHandler.Create)
	organizationRoutes.GET("/:id/publications", publicationHandler.ListByOrg)

	participantRoutes := router.NewDomainGroup("participant", "/participants")
	participantRoutes.DELETE("/:id", membershipHandler.RemoveParticipant)
	participantRoutes.POST("/:id/step-down", membershipHandler.StepDown)

	joinRequestRoutes := router.NewDomainGroup("join-request", "/join-requests")
	joinRequestRoutes.GET("/by-user/:id", membershipHandler.ListJoinRequestsByUser)
	joinRequestRoutes.POST("/:id/approve", membershipHandler.ApproveJoin)
	joinRequestRoutes.POST("/:id/reject", membershipHandler.RejectJoin)

	transferRoutes := router.NewDomainGroup("transfer", "/transfers")
	transferRoutes.GET("/by-recipient/:id", transferHandler.ListByRecipient)
	transferRoutes.GET("/:id", transferHandler.GetByID)
	transferRoutes.POST("/:id/accept", transferHandler.Accept)
	transferRoutes.POST("/:id/reject", transferHandler.Reject)
	transferRoutes.POST("/:id/cancel", transferHandler.Cancel)

	publicationRoutes := router.NewDomainGroup("publication", "/publications")
	publicationRoutes.GET("", publicationHandler.List)
	publicationRoutes.GET("/:id", publicationHandler.GetByID)
	publicationRoutes.PUT("/:id", publicationHandler.Update)
	publicationRoutes.DELETE("/:id", publicationHandler.Delete)

	// Identity domain
	userRoutes := router.NewDomainGroup("user", "/users")
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/by-email", userHandler.GetByEmail)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)

	// Image uploads, one endpoint for every registered entity kind
	uploadRoutes := router.NewDomainGroup("upload", "/uploads")
	uploadRoutes.POST("/:kind/:id", uploadHandler.Upload)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/stats", systemHandler.Stats)

	r.Register(taxonomyRoutes).
		Register(catalogRoutes).
		Register(associationRoutes).
		Register(shopRoutes).
		Register(ratingRoutes).
		Register(organizationRoutes).
		Register(participantRoutes).
		Register(joinRequestRoutes).
		Register(transferRoutes).
		Register(publicationRoutes).
		Register(userRoutes).
		Register(uploadRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
