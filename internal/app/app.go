package app

import (
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/controller"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/pkg/database"
	"ai_maturity_backend/pkg/logger"
	"ai_maturity_backend/pkg/monitoring"
	"ai_maturity_backend/pkg/security"
	"ai_maturity_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	company      *repository.CompanyRepository
	businessArea *repository.BusinessAreaRepository
	person       *repository.PersonRepository
	reference    *repository.ReferenceRepository
	application  *repository.ApplicationRepository
	question     *repository.QuestionRepository
	assessment   *repository.AssessmentRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	company      *service.CompanyService
	businessArea *service.BusinessAreaService
	person       *service.PersonService
	reference    *service.ReferenceService
	application  *service.ApplicationService
	assessment   *service.AssessmentService
	storage      *service.StorageService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	company      *controller.CompanyController
	businessArea *controller.BusinessAreaController
	person       *controller.PersonController
	reference    *controller.ReferenceController
	application  *controller.ApplicationController
	assessment   *controller.AssessmentController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig is invoked by the config watcher on file changes.
func (a *App) ReloadConfig(cfg interface{}) {
	newCfg, ok := cfg.(*config.Config)
	if !ok {
		return
	}
	a.Config = newCfg
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		company:      repository.NewCompanyRepository(db),
		businessArea: repository.NewBusinessAreaRepository(db),
		person:       repository.NewPersonRepository(db),
		reference:    repository.NewReferenceRepository(db),
		application:  repository.NewApplicationRepository(db),
		question:     repository.NewQuestionRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.company)
	s.company = service.NewCompanyService(repos.company, repos.user)
	s.businessArea = service.NewBusinessAreaService(repos.businessArea)
	s.person = service.NewPersonService(repos.person)
	s.reference = service.NewReferenceService(repos.reference)
	s.application = service.NewApplicationService(repos.application, repos.company)
	s.assessment = service.NewAssessmentService(
		repos.assessment,
		repos.question,
		repos.application,
		repos.company,
		db,
		rdb,
		cfg.Scoring,
	)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user, s.storage, repos.company),
		company:      controller.NewCompanyController(s.company),
		businessArea: controller.NewBusinessAreaController(s.businessArea, repos.company),
		person:       controller.NewPersonController(s.person, repos.company),
		reference:    controller.NewReferenceController(s.reference),
		application:  controller.NewApplicationController(s.application),
		assessment:   controller.NewAssessmentController(s.assessment),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Migrations run automatically outside release mode; production
	// schemas change only via the -migrate flags.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to run migrations", zap.Error(err))
		}
		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, question catalog caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("ai-maturity-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}
