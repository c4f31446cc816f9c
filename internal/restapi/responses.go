package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ferreteria.lasu.pe/internal/logging"
	"ferreteria.lasu.pe/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func (api *RestAPI) sendEnvelope(w http.ResponseWriter, r *http.Request, status int, text string) {
	response := models.ResponseModel{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode response", "error", err)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendEnvelope(w, r, http.StatusNotFound, "resource not found")
}

// serverErrorResponse logs through the request-scoped logger installed by
// the logging middleware.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "server error", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	api.sendEnvelope(w, r, http.StatusInternalServerError, "internal server error")
}

// invalidSessionResponse sends a 401 Unauthorized response when a request
// carries no active session token.
func (api *RestAPI) invalidSessionResponse(w http.ResponseWriter, r *http.Request) {
	api.sendEnvelope(w, r, http.StatusUnauthorized, "permission denied")
}

// badRequestResponse sends a 400 with a plain message for non-field errors
// such as a missing confirmation gate.
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, text string) {
	api.sendEnvelope(w, r, http.StatusBadRequest, text)
}

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
