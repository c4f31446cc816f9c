package restapi

import (
	"net/http"
	"sort"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
	"ferreteria.lasu.pe/internal/utils"
)

const (
	recentSalesShown = 4
	topProductsShown = 4
)

// dashboardHandler assembles the dashboard payload: counters and lists
// computed from the live row sets, plus the static forecast blocks.
func (api *RestAPI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	dashboard := models.Dashboard{
		KPIs:              api.dashboardKPIs(),
		RecentSales:       api.recentSales(),
		TopProducts:       api.topProducts(),
		MonthlyTrend:      models.ForecastMonthlyTrend(),
		ProductForecasts:  models.ForecastProducts(),
		CategoryForecasts: models.ForecastCategories(),
	}
	api.sendResponse(w, r, models.NewOKResponse(dashboard))
}

func (api *RestAPI) dashboardKPIs() models.DashboardKPIs {
	kpis := models.DashboardKPIs{}

	if sales, ok := api.Manager.Store(dataset.ResourceSales); ok {
		rows := sales.Rows()
		kpis.SalesCount = len(rows)
		revenue := 0.0
		for _, sale := range rows {
			revenue += flatfile.Float(sale[fieldTotal])
		}
		kpis.SalesRevenue = revenue
	}
	if products, ok := api.Manager.Store(dataset.ResourceProducts); ok {
		kpis.Products = products.Len()
	}
	if clients, ok := api.Manager.Store(dataset.ResourceClients); ok {
		kpis.Clients = clients.Len()
	}
	if vendors, ok := api.Manager.Store(dataset.ResourceVendors); ok {
		kpis.Vendors = vendors.Len()
	}
	return kpis
}

// recentSales takes the newest sales straight off the top of the store,
// which keeps its rows ordered newest first.
func (api *RestAPI) recentSales() []models.RecentSale {
	recent := []models.RecentSale{}
	sales, ok := api.Manager.Store(dataset.ResourceSales)
	if !ok {
		return recent
	}

	for _, sale := range sales.Rows() {
		if len(recent) == recentSalesShown {
			break
		}
		recent = append(recent, models.RecentSale{
			ID:         flatfile.String(sale[fieldSaleID]),
			ClientName: flatfile.String(sale[fieldSaleClient]),
			Total:      utils.FormatMoney(flatfile.Float(sale[fieldTotal])),
			Method:     flatfile.String(sale[fieldSaleMethod]),
		})
	}
	return recent
}

// topProducts aggregates sale lines by product name and keeps the few
// with the highest summed quantity.
func (api *RestAPI) topProducts() []models.TopProduct {
	top := []models.TopProduct{}
	lines, ok := api.Manager.Store(dataset.ResourceSaleLines)
	if !ok {
		return top
	}

	totals := make(map[string]int64)
	for _, line := range lines.Rows() {
		name := flatfile.String(line[fieldProductName])
		if name == "" {
			name = productFallback
		}
		totals[name] += int64(flatfile.Float(line[fieldLineQuantity]))
	}

	for name, quantity := range totals {
		top = append(top, models.TopProduct{Name: name, Quantity: quantity})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > topProductsShown {
		top = top[:topProductsShown]
	}
	return top
}
