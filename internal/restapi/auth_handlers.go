package restapi

import (
	"encoding/json"
	"net/http"

	"ferreteria.lasu.pe/internal/app"
	"ferreteria.lasu.pe/internal/auth"
	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
	"ferreteria.lasu.pe/internal/utils"
)

// loginHandler checks the submitted credential pair against the user row
// set and issues a session token. A mismatch is an inline 401 with no
// state change; retries are free.
func (api *RestAPI) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	users, ok := api.Manager.Store(dataset.ResourceUsers)
	if !ok {
		api.serverErrorResponse(w, r, dataset.ErrUnknownResource)
		return
	}

	user, ok := auth.Authenticate(users.Rows(), utils.SanitizeInput(req.Username), req.Password)
	if !ok {
		api.sendEnvelope(w, r, http.StatusUnauthorized, "Usuario o contraseña incorrectos.")
		return
	}

	session := api.Sessions.Create(flatfile.String(user[auth.UserIDField]), flatfile.String(user[auth.UsernameField]))
	api.Logger.Info("session created", "user", session.Username)
	api.sendResponse(w, r, models.NewEntryResponse(session))
}

// registerHandler creates a user row in memory. Like every other mutation
// it survives only until the process restarts.
func (api *RestAPI) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	fieldErrors := make(map[string][]string)
	if req.Username == "" {
		fieldErrors["nombreUsu"] = append(fieldErrors["nombreUsu"], "Field \"nombreUsu\" is required.")
	}
	if req.Password == "" {
		fieldErrors["contrasenaUsu"] = append(fieldErrors["contrasenaUsu"], "Field \"contrasenaUsu\" is required.")
	}
	if req.Password != req.ConfirmPassword {
		fieldErrors["confirmarContrasena"] = append(fieldErrors["confirmarContrasena"], "Las contraseñas no coinciden.")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	users, ok := api.Manager.Store(dataset.ResourceUsers)
	if !ok {
		api.serverErrorResponse(w, r, dataset.ErrUnknownResource)
		return
	}

	username := utils.SanitizeInput(req.Username)
	for _, user := range users.Rows() {
		if flatfile.String(user[auth.UsernameField]) == username {
			api.sendEnvelope(w, r, http.StatusConflict, "El usuario ya existe.")
			return
		}
	}

	row, err := api.Manager.CreateRow(dataset.ResourceUsers, flatfile.Row{
		auth.UsernameField: username,
		auth.PasswordField: req.Password,
	})
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	// The stored password never goes back over the wire.
	entry := row.Clone()
	delete(entry, auth.PasswordField)
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

// logoutHandler destroys the session backing the request token.
func (api *RestAPI) logoutHandler(w http.ResponseWriter, r *http.Request) {
	token := app.SessionToken(r)
	if !api.Sessions.Destroy(token) {
		api.sendNotFound(w, r)
		return
	}
	api.sendResponse(w, r, models.NewOKResponse(struct{}{}))
}

// sessionHandler returns the session for the request token, letting a tab
// skip re-authentication on reload.
func (api *RestAPI) sessionHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := api.Sessions.Lookup(app.SessionToken(r))
	if !ok {
		api.invalidSessionResponse(w, r)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(session))
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewOKResponse(struct{}{}))
}
