package restapi

import (
	"encoding/json"
	"net/http"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
)

// createPurchaseHandler submits the purchase form: vendor, date and the
// cart of restocked products.
func (api *RestAPI) createPurchaseHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	fieldErrors := make(map[string][]string)
	if req.VendorID == "" {
		fieldErrors[fieldVendorID] = append(fieldErrors[fieldVendorID], "Field \"idVende\" is required.")
	}
	cart, cartErrors := api.buildCart(req.Items)
	for field, messages := range cartErrors {
		fieldErrors[field] = append(fieldErrors[field], messages...)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	row, err := api.Manager.CreateRow(dataset.ResourcePurchases, api.purchaseFields(req, cart))
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	purchaseID := flatfile.String(row[fieldPurchaseID])
	if err := api.replaceLines(dataset.ResourcePurchaseLines, fieldPurchaseID, purchaseID, cart); err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// updatePurchaseHandler replaces a purchase's header and lines in place.
func (api *RestAPI) updatePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	cart, cartErrors := api.buildCart(req.Items)
	if len(cartErrors) > 0 {
		api.validationErrorResponse(w, r, cartErrors)
		return
	}

	row, err := api.Manager.UpdateRow(dataset.ResourcePurchases, id, api.purchaseFields(req, cart))
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	if err := api.replaceLines(dataset.ResourcePurchaseLines, fieldPurchaseID, id, cart); err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

func (api *RestAPI) purchaseFields(req models.PurchaseRequest, cart *dataset.Cart) flatfile.Row {
	date := req.Date
	if date == "" {
		date = todayDate()
	}

	return flatfile.Row{
		fieldVendorID:     req.VendorID,
		fieldPurchaseDate: date,
		fieldTotal:        cart.Total().InexactFloat64(),
	}
}

// purchaseLinesHandler returns the stored line items of one purchase.
func (api *RestAPI) purchaseLinesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	purchases, ok := api.Manager.Store(dataset.ResourcePurchases)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	if _, ok := purchases.Get(id); !ok {
		api.sendNotFound(w, r)
		return
	}

	rows := api.linesFor(dataset.ResourcePurchaseLines, fieldPurchaseID, id)
	list := make([]any, len(rows))
	for i, row := range rows {
		list[i] = row
	}
	api.sendResponse(w, r, models.NewListResponse(list, 1, len(list), 1, len(list)))
}
