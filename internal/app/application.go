package app

import (
	"log/slog"

	"ferreteria.lasu.pe/internal/auth"
	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/models"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config   Config
	Logger   *slog.Logger
	Manager  *dataset.Manager
	Sessions *auth.Registry
}

// Config holds all the configuration settings for our Application: the
// network port, the operating environment, the data directory holding the
// static sources, and the owner block printed on sale documents. These are
// read from command-line flags when the Application starts.
type Config struct {
	Port        int
	Env         string
	DataDir     string
	CatalogPath string
	RateLimit   int
	Owner       models.OwnerInfo
}
