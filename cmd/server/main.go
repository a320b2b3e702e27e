package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/darksuei/pitci-server/internal/config"
	"github.com/darksuei/pitci-server/internal/infrastructure/models"
	"github.com/darksuei/pitci-server/internal/infrastructure/repositories"
	"github.com/darksuei/pitci-server/internal/interfaces/http/handlers"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/usecases"
	"github.com/darksuei/pitci-server/pkg/jwt"
	"github.com/darksuei/pitci-server/pkg/logger"
	"github.com/darksuei/pitci-server/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	connectRDB = redis.Connect
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	redisClient, err := connectRDB(cfg.Redis.URL, cfg.Redis.Password)
	if err != nil {
		logger.Error(context.Background(), "Failed to connect to Redis", zap.Error(err))
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info(context.Background(), "Redis connected")

	// Set Gin mode
	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Auth{},
		&models.PersonalInformation{},
		&models.ProfessionalBackground{},
		&models.CompetitionQuestions{},
		&models.TechnicalAgreement{},
		&models.Review{},
		&models.Pitch{},
		&models.Business{},
		&models.Award{},
		&models.AwardNominee{},
		&models.Vote{},
		&models.Meeting{},
		&models.Alert{},
	); err != nil {
		log.Printf("⚠️ Auto migration failed: %v", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	authRepo := repositories.NewAuthRepository(db)
	pitchRepo := repositories.NewPitchRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	awardRepo := repositories.NewAwardRepository(db)
	nomineeRepo := repositories.NewAwardNomineeRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	meetingRepo := repositories.NewMeetingRepository(db)
	alertRepo := repositories.NewAlertRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize supporting services
	codeStore := redis.NewCodeStore(redisClient)
	gateway := usecases.NewLogNotificationGateway()
	alerts := usecases.NewAlertService(alertRepo, userRepo, gateway)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, authRepo, codeStore, gateway, jwtService, uow)
	pitchUsecase := usecases.NewPitchUsecase(pitchRepo, businessRepo, userRepo, alerts, uow, cfg.Server.Production())
	awardUsecase := usecases.NewAwardUsecase(awardRepo, nomineeRepo, voteRepo, userRepo, businessRepo, pitchRepo, alerts, uow)
	meetingUsecase := usecases.NewMeetingUsecase(meetingRepo, userRepo, businessRepo, uow)
	userUsecase := usecases.NewUserUsecase(userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	pitchHandler := handlers.NewPitchHandler(pitchUsecase)
	meetingHandler := handlers.NewMeetingHandler(meetingUsecase)
	adminHandler := handlers.NewAdminHandler(pitchUsecase, meetingUsecase, userRepo)
	awardHandler := handlers.NewAwardHandler(awardUsecase)
	alertHandler := handlers.NewAlertHandler(alerts)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		userHandler:    userHandler,
		pitchHandler:   pitchHandler,
		meetingHandler: meetingHandler,
		adminHandler:   adminHandler,
		awardHandler:   awardHandler,
		alertHandler:   alertHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	// Start server
	log.Printf("🚀 Pitci Server starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
