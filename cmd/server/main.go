package main

import (
	"log"

	"vendlink/internal/config"
	"vendlink/internal/db"
	"vendlink/internal/logger"
	"vendlink/internal/middleware"
	"vendlink/internal/repository"
	"vendlink/internal/router"
	"vendlink/internal/services"
	"vendlink/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	gormDB, err := db.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}

	cache, err := utils.NewCache(500)
	if err != nil {
		zlog.Fatal("cache init failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)

	// Initialize Gin
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(gin.Recovery())
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	router.RegisterRoutes(r, router.Deps{
		Auth:     services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Products: services.NewProductService(productRepo),
		Votes:    services.NewVoteService(voteRepo, productRepo),
		Users:    services.NewUserService(userRepo),
		Cache:    cache,
	})

	zlog.Info("vendlink server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
