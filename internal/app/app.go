package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"balanceed_backend/internal/config"
	"balanceed_backend/internal/controller"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/service"
	"balanceed_backend/pkg/configwatcher"
	"balanceed_backend/pkg/database"
	"balanceed_backend/pkg/logger"
	"balanceed_backend/pkg/monitoring"
	"balanceed_backend/pkg/security"
	"balanceed_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	lesson      *repository.LessonRepository
	question    *repository.QuestionRepository
	quizAttempt *repository.QuizAttemptRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	dailyGoal   *repository.DailyGoalRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	course       *service.CourseService
	lesson       *service.LessonService
	quiz         *service.QuizService
	progress     *service.ProgressService
	achievement  *service.AchievementService
	gamification *service.GamificationService
	storage      *service.StorageService
	ai           *service.AIService
	youtube      *service.YouTubeService
}

type controllers struct {
	health   *controller.HealthController
	auth     *controller.AuthController
	user     *controller.UserController
	course   *controller.CourseController
	lesson   *controller.LessonController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	content  *controller.ContentController
	ai       *controller.AIController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		lesson:      repository.NewLessonRepository(db),
		question:    repository.NewQuestionRepository(db),
		quizAttempt: repository.NewQuizAttemptRepository(db),
		progress:    repository.NewProgressRepository(db),
		achievement: repository.NewAchievementRepository(db),
		dailyGoal:   repository.NewDailyGoalRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.gamification = service.NewGamificationService(repos.user, repos.achievement, repos.dailyGoal)
	s.user = service.NewUserService(repos.user, repos.dailyGoal, repos.progress, rdb)
	s.course = service.NewCourseService(repos.course, repos.lesson)
	s.lesson = service.NewLessonService(repos.lesson, repos.course, repos.question)
	s.quiz = service.NewQuizService(db, repos.lesson, repos.question, repos.quizAttempt, repos.user, s.gamification)
	s.progress = service.NewProgressService(db, repos.progress, repos.course, repos.lesson, repos.user, s.gamification)
	s.achievement = service.NewAchievementService(repos.achievement, repos.user)
	s.ai = service.NewAIService(cfg.AI)
	s.youtube = service.NewYouTubeService(cfg.YouTube)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:   controller.NewHealthController(db),
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user, s.achievement),
		course:   controller.NewCourseController(s.course, s.lesson),
		lesson:   controller.NewLessonController(s.lesson),
		quiz:     controller.NewQuizController(s.quiz),
		progress: controller.NewProgressController(s.progress),
		content:  controller.NewContentController(s.storage),
		ai:       controller.NewAIController(s.ai, s.youtube),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("balanceed-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Configuration reloaded")
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
