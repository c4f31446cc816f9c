package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/docgen"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
)

// saleDocumentHandler renders the printable order slip of one sale:
// the sale header, its line items and the client and owner details.
func (api *RestAPI) saleDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.idFromRequest(w, r)
	if !ok {
		return
	}

	sales, ok := api.Manager.Store(dataset.ResourceSales)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	sale, ok := sales.Get(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	doc := api.assembleSaleDocument(id, sale)

	var buf bytes.Buffer
	if err := docgen.RenderSaleDocument(&buf, doc); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "pedido-"+id+".pdf"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		api.Logger.Error("failed to stream sale document", "sale", id, "error", err)
	}
}

// assembleSaleDocument gathers everything the printable guide needs: the
// sale header, the client's RUC, reference and district, the payment
// method, the owner block and the line items.
func (api *RestAPI) assembleSaleDocument(id string, sale flatfile.Row) models.SaleDocument {
	doc := models.SaleDocument{
		SaleID:         id,
		Date:           flatfile.String(sale[fieldSaleDate]),
		ClientName:     flatfile.String(sale[fieldSaleClient]),
		PaymentMethod:  flatfile.String(sale[fieldSaleMethod]),
		SaleType:       flatfile.String(sale[fieldSaleType]),
		Total:          dataset.Money(sale[fieldTotal]),
		InitialPayment: dataset.Money(sale[fieldInitialPayment]),
		Balance:        api.saleBalance(sale),
		Owner:          api.ownerInfo(),
	}

	if clients, ok := api.Manager.Store(dataset.ResourceClients); ok {
		if client, found := clients.Get(flatfile.String(sale[fieldClientID])); found {
			doc.ClientRUC = flatfile.String(client[fieldClientRUC])
			doc.ClientRef = flatfile.String(client[fieldClientRef])
			doc.District = flatfile.String(client[fieldDistrictName])
		}
	}

	for _, line := range api.linesFor(dataset.ResourceSaleLines, fieldSaleID, id) {
		doc.Lines = append(doc.Lines, models.DocumentLine{
			Quantity:    int64(flatfile.Float(line[fieldLineQuantity])),
			Description: flatfile.String(line[fieldProductName]),
			UnitPrice:   dataset.Money(line[fieldLinePrice]),
			Subtotal:    dataset.Money(line[fieldLineSubtotal]),
		})
	}
	return doc
}

// ownerInfo prefers the owner record loaded from disk, falling back to
// the values configured at startup.
func (api *RestAPI) ownerInfo() models.OwnerInfo {
	owners, ok := api.Manager.Store(dataset.ResourceOwners)
	if !ok || owners.Len() == 0 {
		return api.Config.Owner
	}
	rows := owners.Rows()
	owner := rows[0]

	info := models.OwnerInfo{
		Name:     flatfile.String(owner[fieldOwnerName]),
		Business: flatfile.String(owner[fieldOwnerBusiness]),
		Phone:    flatfile.String(owner[fieldOwnerPhone]),
		Address:  flatfile.String(owner[fieldOwnerAddress]),
	}
	if info.Business == "" {
		info.Business = api.Config.Owner.Business
	}
	if info.Name == "" {
		info.Name = api.Config.Owner.Name
	}
	return info
}
