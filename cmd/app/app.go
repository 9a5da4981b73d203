package main

import (
	"os"

	"github.com/glowshelf/go-backend/internal/app"
	config "github.com/glowshelf/go-backend/internal/cfg"
	"github.com/glowshelf/go-backend/pkg/logger"
)

//	@title			GlowShelf API
//	@version		1.0
//	@description	Учёт сроков годности косметики: полка продуктов, статусы годности и сводки.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
