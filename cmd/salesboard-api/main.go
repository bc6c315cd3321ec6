package main

import (
	"salesboard/internal/api"
	"salesboard/internal/api/handler"
	"salesboard/internal/config"
	"salesboard/internal/pipeline"
	"salesboard/internal/store"
	"salesboard/pkg/router"
	"salesboard/pkg/utils"
)

// @title Salesboard API
// @version 1.0
// @description Sales dashboard data pipeline: upload, clean, summarize, filter, and export sales datasets.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	logger := utils.NewLogger()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	cleaner := pipeline.NewCleaner(logger, pipeline.ImputeStrategy(cfg.ImputeStrategy), cfg.CoercionTolerance)
	svc := pipeline.NewService(logger, cleaner, pipeline.NewRegistry(), utils.NewOutputManager(cfg.OutputDir))

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r, handler.NewDatasetHandler(svc, cfg, logger))

	// Start server
	r.Start(cfg.ListenAddr)
}
