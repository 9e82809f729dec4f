package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/internal/config"
	"github.com/osuushi/earclip/internal/loader"
	"github.com/osuushi/earclip/internal/server"
)

func serve(ctx context.Context, cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	h := &server.Handler{
		Engine:      &advanced.Engine{Logger: runtimeLogger},
		Workers:     cfg.Batch.Workers,
		MaxPoints:   cfg.Server.MaxPoints,
		MaxPolygons: cfg.Server.MaxPolygons,
		Loader:      loader.Options{Reorient: cfg.Loader.Reorient},
		Logger:      runtimeLogger,
	}
	return server.Run(ctx, cfg.Server.Addr, h)
}
