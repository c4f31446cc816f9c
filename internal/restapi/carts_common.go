package restapi

import (
	"time"

	"github.com/shopspring/decimal"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
)

// buildCart folds the submitted lines into a cart, resolving product
// display names from the product row set. Lines for the same product
// merge: quantities sum, the unit price takes the latest value.
func (api *RestAPI) buildCart(items []models.CartLineRequest) (*dataset.Cart, map[string][]string) {
	fieldErrors := make(map[string][]string)
	if len(items) == 0 {
		fieldErrors["items"] = append(fieldErrors["items"], "At least one line item is required.")
		return nil, fieldErrors
	}

	var productRows []flatfile.Row
	if products, ok := api.Manager.Store(dataset.ResourceProducts); ok {
		productRows = products.Rows()
	}

	cart := &dataset.Cart{}
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice <= 0 {
			fieldErrors["items"] = append(fieldErrors["items"], "Each line needs a product, a positive quantity and a positive price.")
			return nil, fieldErrors
		}
		cart.Add(dataset.LineItem{
			ProductID: item.ProductID,
			Name:      dataset.Resolve(item.ProductID, productRows, fieldProductID, fieldProductName, productFallback),
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
		})
	}
	return cart, nil
}

// replaceLines swaps the stored line rows of one parent (purchase or
// sale) for the cart's lines.
func (api *RestAPI) replaceLines(lineResource, parentField, parentID string, cart *dataset.Cart) error {
	lines, ok := api.Manager.Store(lineResource)
	if !ok {
		return dataset.ErrUnknownResource
	}

	lines.DeleteMatching(func(row flatfile.Row) bool {
		return flatfile.String(row[parentField]) == parentID
	})

	for _, item := range cart.Items() {
		_, err := lines.Create(flatfile.Row{
			parentField:       parentID,
			fieldProductID:    item.ProductID,
			fieldProductName:  item.Name,
			fieldLineQuantity: item.Quantity,
			fieldLinePrice:    item.UnitPrice.InexactFloat64(),
			fieldLineSubtotal: item.Subtotal().InexactFloat64(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// linesFor returns the stored line rows of one parent, in store order.
func (api *RestAPI) linesFor(lineResource, parentField, parentID string) []flatfile.Row {
	lines, ok := api.Manager.Store(lineResource)
	if !ok {
		return nil
	}
	return lines.Select(func(row flatfile.Row) bool {
		return flatfile.String(row[parentField]) == parentID
	})
}

// todayDate is the default for date fields left empty on submit.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}
