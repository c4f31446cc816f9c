package restapi

import (
	"net/http"
	"time"

	"ferreteria.lasu.pe/internal/app"
)

// RestAPI hangs the HTTP handlers off the shared Application dependencies.
type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}
