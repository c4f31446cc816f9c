package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"ferreteria.lasu.pe/internal/app"
	"ferreteria.lasu.pe/internal/auth"
	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/logging"
	"ferreteria.lasu.pe/internal/restapi"
)

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.DataDir, "data-dir", "data", "Directory holding the static CSV and JSON sources")
	flag.StringVar(&cfg.CatalogPath, "catalog", "data/catalog.yaml", "Path to the resource catalog")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Requests per second per session (0 disables limiting)")
	flag.StringVar(&cfg.Owner.Name, "owner-name", "Luis Alberto Soto Urbina", "Owner name printed on sale documents")
	flag.StringVar(&cfg.Owner.Business, "owner-business", "VENTA DE ARTICULOS DE FERRETERIA EN GENERAL", "Business line printed on sale documents")
	flag.StringVar(&cfg.Owner.Phone, "owner-phone", "", "Owner phone printed on sale documents")
	flag.StringVar(&cfg.Owner.Address, "owner-address", "", "Owner address printed on sale documents")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	manager, err := dataset.InitManager(cfg.DataDir, cfg.CatalogPath, logger)
	if err != nil {
		logger.Error("failed to initialize dataset manager", "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.LogStatistics()

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Manager:  manager,
		Sessions: auth.NewRegistry(),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
