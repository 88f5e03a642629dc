package api

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/likeclem30/taxipassbackend/config"
	"github.com/likeclem30/taxipassbackend/infra/queue"
	"github.com/likeclem30/taxipassbackend/internal/api/rest/handlers"
	"github.com/likeclem30/taxipassbackend/internal/api/rest/middleware"
	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/helper"
	"github.com/likeclem30/taxipassbackend/internal/notification"
	"github.com/likeclem30/taxipassbackend/internal/repository"
	"github.com/likeclem30/taxipassbackend/internal/services"
)

func StartServer(cfg config.Config, logger *zap.Logger) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("database connection error", zap.Error(err))
	}
	logger.Info("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20210417

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		logger.Fatal("migration lock error", zap.Error(err))
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(&domain.Passenger{}); err != nil {
		logger.Fatal("migration error", zap.Error(err))
	}
	logger.Info("migration successful")

	// ---------- Auth ----------
	publicKeyPEM, err := os.ReadFile(cfg.PublicKeyPath)
	if err != nil {
		logger.Fatal("public key read error", zap.Error(err))
	}
	auth, err := helper.SetupAuth(publicKeyPEM)
	if err != nil {
		logger.Fatal("public key parse error", zap.Error(err))
	}
	authmw := middleware.AuthMiddleware(auth)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		logger,
	)
	dispatcher, err := notification.NewDispatcher(kafkaProducer, logger)
	if err != nil {
		logger.Fatal("notification template error", zap.Error(err))
	}

	// ---------- Repositories ----------
	passengerRepo := repository.NewPassengerRepository(db, logger)

	// ---------- Services ----------
	passengerSvc := services.NewPassengerService(passengerRepo, dispatcher, logger)
	statSvc := services.NewStatService(passengerRepo, logger)

	// ---------- Handlers ----------
	passengerHandler := handlers.NewPassengerHandler(passengerSvc, auth)
	passengerHandler.SetupRoutes(app, authmw)
	statHandler := handlers.NewStatHandler(statSvc)
	statHandler.SetupRoutes(app, authmw)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	logger.Info("listening", zap.String("addr", cfg.ServerPort))
	if err := app.Listen(cfg.ServerPort); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
