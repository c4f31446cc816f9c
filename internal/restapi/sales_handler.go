package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
)

// createSaleHandler submits the sale form: header fields plus the cart.
// The payment state is derived, not submitted: a cash sale or an initial
// payment covering the total is Pagado, anything else Pendiente.
func (api *RestAPI) createSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	fieldErrors := make(map[string][]string)
	if req.ClientID == "" {
		fieldErrors[fieldClientID] = append(fieldErrors[fieldClientID], "Field \"idCliente\" is required.")
	}
	cart, cartErrors := api.buildCart(req.Items)
	for field, messages := range cartErrors {
		fieldErrors[field] = append(fieldErrors[field], messages...)
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	row, err := api.Manager.CreateRow(dataset.ResourceSales, api.saleFields(req, cart))
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	saleID := flatfile.String(row[fieldSaleID])
	if err := api.replaceLines(dataset.ResourceSaleLines, fieldSaleID, saleID, cart); err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// updateSaleHandler replaces a sale's header and lines in place.
func (api *RestAPI) updateSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	cart, cartErrors := api.buildCart(req.Items)
	if len(cartErrors) > 0 {
		api.validationErrorResponse(w, r, cartErrors)
		return
	}

	row, err := api.Manager.UpdateRow(dataset.ResourceSales, id, api.saleFields(req, cart))
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	if err := api.replaceLines(dataset.ResourceSaleLines, fieldSaleID, id, cart); err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, models.NewEntryResponse(row))
}

// saleFields assembles the sale row from the request and the cart total.
func (api *RestAPI) saleFields(req models.SaleRequest, cart *dataset.Cart) flatfile.Row {
	total := cart.Total()
	initial := decimal.NewFromFloat(req.InitialPayment)

	state := statePending
	if req.SaleType == saleTypeCash || initial.GreaterThanOrEqual(total) {
		state = statePaid
	}

	date := req.Date
	if date == "" {
		date = todayDate()
	}

	return flatfile.Row{
		fieldClientID:       req.ClientID,
		fieldSaleDate:       date,
		fieldTotal:          total.InexactFloat64(),
		fieldSaleType:       req.SaleType,
		fieldInitialPayment: req.InitialPayment,
		fieldPaymentState:   state,
		fieldMethodID:       req.PaymentMethodID,
	}
}

// saleLinesHandler returns the stored line items of one sale.
func (api *RestAPI) saleLinesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	sales, ok := api.Manager.Store(dataset.ResourceSales)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	if _, ok := sales.Get(id); !ok {
		api.sendNotFound(w, r)
		return
	}

	rows := api.linesFor(dataset.ResourceSaleLines, fieldSaleID, id)
	list := make([]any, len(rows))
	for i, row := range rows {
		list[i] = row
	}
	api.sendResponse(w, r, models.NewListResponse(list, 1, len(list), 1, len(list)))
}
