package dataset

import (
	"github.com/shopspring/decimal"

	"ferreteria.lasu.pe/internal/flatfile"
)

// LineItem is one product/quantity/price entry in an editable purchase or
// sale cart prior to submission.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal is quantity × unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Cart accumulates line items for a purchase or sale. Adding an item for a
// product already in the cart merges: quantities sum and the unit price
// takes the latest value. Purchases and sales share this policy.
type Cart struct {
	items []LineItem
}

// Add merges item into the cart by product id.
func (c *Cart) Add(item LineItem) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			c.items[i].UnitPrice = item.UnitPrice
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove drops the line for a product id, if present.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums quantity × unit price over all lines. Display rounds to two
// decimal places; the sum itself is exact.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Money parses a price-like field value into a decimal, tolerating the
// float64/int64/string mix the flat files produce.
func Money(v any) decimal.Decimal {
	switch x := v.(type) {
	case int64:
		return decimal.NewFromInt(x)
	case float64:
		return decimal.NewFromFloat(x)
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// CartFromRows rebuilds a cart from stored line-item rows, used when
// editing an existing purchase or sale.
func CartFromRows(rows []flatfile.Row, productField, nameField, qtyField, priceField string) *Cart {
	cart := &Cart{}
	for _, row := range rows {
		cart.Add(LineItem{
			ProductID: flatfile.String(row[productField]),
			Name:      flatfile.String(row[nameField]),
			Quantity:  int64(flatfile.Float(row[qtyField])),
			UnitPrice: Money(row[priceField]),
		})
	}
	return cart
}
