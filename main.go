package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Avadhut20/roxiler/configs"
	"github.com/Avadhut20/roxiler/middlewares"
	"github.com/Avadhut20/roxiler/pkg/logger"
	"github.com/Avadhut20/roxiler/routes"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		zlog.Fatal("connect database", "error", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		zlog.Fatal("migrate database", "error", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		zlog.Fatal("seed admin", "error", err)
	}

	// HTTP
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(zlog))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, zlog)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", "error", err)
	}
}
