package dataset

// Catalog resource names. The catalog file may define more, but these are
// the ones the purchase/sale/payment flows address directly.
const (
	ResourceUsers         = "users"
	ResourceOwners        = "owners"
	ResourceClients       = "clients"
	ResourceVendors       = "vendors"
	ResourceProducts      = "products"
	ResourcePurchases     = "purchases"
	ResourcePurchaseLines = "purchase-lines"
	ResourceSales         = "sales"
	ResourceSaleLines     = "sale-lines"
	ResourcePayments      = "payments"
)
