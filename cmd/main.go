package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/codingtracker/backend/api/middleware"
	v1 "github.com/codingtracker/backend/api/v1"
	"github.com/codingtracker/backend/internal/platform"
	"github.com/codingtracker/backend/internal/roadmap"
	"github.com/codingtracker/backend/internal/user"
	"github.com/codingtracker/backend/pkg/config"
	"github.com/codingtracker/backend/pkg/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	db.Init(cfg)
	if err := db.DB.AutoMigrate(&user.User{}, &platform.Record{}, &roadmap.Entry{}); err != nil {
		log.Fatalf("error running migrations: %v", err)
	}

	user.InitJWT(cfg.JWTSecret)

	e := echo.New()
	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	userService := user.NewUserService(user.NewUserRepository())
	statsService := platform.NewStatsService(
		platform.NewRecordRepository(),
		platform.NewStatsCache(db.Rdb),
	)
	roadmapService := roadmap.NewRoadmapService(
		roadmap.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterURL),
		roadmap.NewEntryRepository(),
	)

	v1.NewUserHandler(userService).RegisterRoutes(e)

	authed := e.Group("")
	authed.Use(api_middleware.SetupJWTMiddleware(cfg.JWTSecret))
	v1.NewRoadmapHandler(roadmapService).RegisterRoutes(authed)
	v1.NewPlatformHandler(statsService).RegisterRoutes(authed)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
