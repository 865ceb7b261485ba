package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"hospital-management-server/internal/config"
	"hospital-management-server/internal/logger"
	"hospital-management-server/internal/models"
	"hospital-management-server/internal/repository"
	"hospital-management-server/internal/routes"
	"hospital-management-server/internal/session"
)

const sessionCookieName = "hms_session"

func main() {
	// A missing .env is fine; the environment may already be set
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatalf("Error loading config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	if envErr != nil {
		logger.WithError(envErr).Warn("no .env file loaded")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := models.InitDB(models.DatabaseConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		logger.Log.Fatalf("Error connecting to database: %v", err)
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Log.Fatalf("Error initializing session store: %v", err)
	}

	router, err := routes.NewRouter(routes.Dependencies{
		Users:        repository.NewUserRepository(db),
		Doctors:      repository.NewDoctorRepository(db),
		Appointments: repository.NewAppointmentRepository(db, cfg.AuditAppointments),
		Audit:        repository.NewAuditRepository(db),
		Probe:        repository.NewProbeRepository(db),
		Sessions:     sessions,
	}, cfg.Origin)
	if err != nil {
		logger.Log.Fatalf("Error building router: %v", err)
	}

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.WithField("addr", serverAddr).Info("Server running")
	if err := router.Run(serverAddr); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	options := session.CookieOptions{
		Name:   sessionCookieName,
		MaxAge: cfg.SessionMaxAgeHrs * 60 * 60,
		Secure: cfg.IsProduction(),
	}

	if cfg.SessionStore != config.SessionStoreRedis {
		return session.NewCookieStore(cfg.SessionSecret, options), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.WithField("addr", cfg.Redis.Addr).Info("Connected to Redis")

	return session.NewRedisStore(client, "hms:session:", options), nil
}
