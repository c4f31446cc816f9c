package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
	"ferreteria.lasu.pe/internal/utils"
)

// resourceErrorResponse maps data-layer errors onto the wire formats.
func (api *RestAPI) resourceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *dataset.ValidationError
	switch {
	case errors.As(err, &validationErr):
		api.validationErrorResponse(w, r, validationErr.Fields)
	case errors.Is(err, dataset.ErrNotFound), errors.Is(err, dataset.ErrUnknownResource):
		api.sendNotFound(w, r)
	case errors.Is(err, dataset.ErrNotConfirmed):
		api.badRequestResponse(w, r, "delete requires confirm=true")
	default:
		api.serverErrorResponse(w, r, err)
	}
}

// storeFromRequest resolves the :resource route parameter to its store.
func (api *RestAPI) storeFromRequest(w http.ResponseWriter, r *http.Request) (*dataset.Store, bool) {
	name := utils.ExtractParam(r, "resource")
	if err := utils.ValidateResourceName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"resource": {err.Error()}})
		return nil, false
	}

	store, ok := api.Manager.Store(name)
	if !ok {
		api.sendNotFound(w, r)
		return nil, false
	}
	return store, true
}

// idFromRequest validates the :id route parameter.
func (api *RestAPI) idFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := utils.ExtractParam(r, "id")
	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"id": {err.Error()}})
		return "", false
	}
	return id, true
}

// listResourceHandler returns the current page of a resource. A page query
// parameter moves the resource's current page first; out-of-range pages
// are rejected so the navigation controls stay within bounds.
func (api *RestAPI) listResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}

	page, fieldErrors := utils.ParsePageParam(r.URL.Query(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if page > 0 {
		if err := store.SetPage(page); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"page": {"Invalid field value for field \"page\"."},
			})
			return
		}
	}

	rows, current, totalPages := store.CurrentPage()
	list := make([]any, len(rows))
	for i, row := range rows {
		list[i] = row
	}
	api.sendResponse(w, r, models.NewListResponse(list, current, store.Spec().PageSize, totalPages, store.Len()))
}

// getResourceHandler returns one row by id.
func (api *RestAPI) getResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	row, ok := store.Get(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// createResourceHandler inserts a row built from the request body. The
// data layer validates required fields and assigns the synthetic id.
func (api *RestAPI) createResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}

	var fields flatfile.Row
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	row, err := api.Manager.CreateRow(store.Spec().Name, fields)
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// updateResourceHandler replaces the row matching id in place. An unknown
// id is a 404, not a silent no-op.
func (api *RestAPI) updateResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	var fields flatfile.Row
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	row, err := api.Manager.UpdateRow(store.Spec().Name, id, fields)
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// deleteResourceHandler removes one row behind the confirm=true gate and
// reports the page the view should land on afterwards.
func (api *RestAPI) deleteResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	confirmed := utils.ParseBoolParam(r.URL.Query(), "confirm")
	if err := api.Manager.DeleteRow(store.Spec().Name, id, confirmed); err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewOKResponse(struct {
		Page int `json:"page"`
	}{Page: store.Page()}))
}
