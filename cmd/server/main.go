package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/config"
	"github.com/Nixie-Tech-LLC/minaret/internal/contact"
	"github.com/Nixie-Tech-LLC/minaret/internal/db"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/mqtt"
	"github.com/Nixie-Tech-LLC/minaret/internal/prefs"
	"github.com/Nixie-Tech-LLC/minaret/internal/redis"
)

// visitor preferences outlive a browsing session, like localStorage
const preferenceTTL = 365 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg)

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore(conn)

	if err := bootstrapAdmin(store, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap")
	}

	preferences := initPreferences(cfg)

	// staff notifications are optional; keep the interface nil when disabled
	var notifier contact.Notifier
	if cfg.MQTTBrokerURL != "" {
		publisher, err := mqtt.Connect(cfg.MQTTBrokerURL, "minaret-server", cfg.MQTTTopic)
		if err != nil {
			log.Error().Err(err).Str("broker", cfg.MQTTBrokerURL).Msg("MQTT unavailable, contact notifications disabled")
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	storageSystem := InitStorage(cfg)
	contactService := contact.NewService(store, storageSystem, notifier)

	tmpl, err := LoadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("templates")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	RegisterRoutes(r, cfg, Services{
		Store:       store,
		Preferences: preferences,
		Contact:     contactService,
	}, tmpl)

	log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// requestLogger replaces gin's default logger with zerolog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}

// initPreferences falls back to process memory when Redis is down, so the
// site keeps working with preferences that last until restart.
func initPreferences(cfg *config.Config) prefs.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := redis.Connect(ctx, cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddress).Msg("redis unavailable, keeping preferences in memory")
		return prefs.NewMemoryStore()
	}
	log.Info().Str("addr", cfg.RedisAddress).Msg("preferences stored in redis")
	return prefs.NewRedisStore(rdb, preferenceTTL)
}

type adminAccounts interface {
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
}

// bootstrapAdmin creates the staff account named by ADMIN_EMAIL once.
func bootstrapAdmin(store adminAccounts, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if existing, _ := store.GetUserByEmail(email); existing != nil {
		return nil
	}
	hashed, err := middleware.HashPassword(password)
	if err != nil {
		return err
	}
	id, err := store.CreateUser(email, hashed, nil)
	if err != nil {
		return err
	}
	log.Info().Int("user_id", id).Str("email", email).Msg("admin account created")
	return nil
}
