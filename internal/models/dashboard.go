package models

// DashboardKPIs are the headline counters of the dashboard.
type DashboardKPIs struct {
	SalesCount   int     `json:"ventasMes"`
	SalesRevenue float64 `json:"ventasTotalMonto"`
	Products     int     `json:"totalProductos"`
	Clients      int     `json:"totalClientes"`
	Vendors      int     `json:"totalProveedores"`
}

// RecentSale is one of the most recent sales shown on the dashboard.
type RecentSale struct {
	ID         string `json:"id"`
	ClientName string `json:"cliente"`
	Total      string `json:"total"`
	Method     string `json:"metodo"`
}

// TopProduct is one of the best-selling products by summed quantity.
type TopProduct struct {
	Name     string `json:"nombre"`
	Quantity int64  `json:"ventas"`
}

// MonthlyPoint is one point of the sales trend series. Nil means the side
// has no value for that month (history has no forecast, future months have
// no actuals).
type MonthlyPoint struct {
	Month    string   `json:"mes"`
	Actual   *float64 `json:"ventasReales"`
	Forecast *float64 `json:"prediccion"`
}

// ProductForecast is the per-product portion of the static forecast block.
type ProductForecast struct {
	Product    string `json:"producto"`
	Current    int    `json:"ventaActual"`
	NextMonth  int    `json:"prediccionMes"`
	Trend      string `json:"tendencia"`
	Confidence int    `json:"confianza"`
}

// CategoryForecast is the per-category portion of the static forecast block.
type CategoryForecast struct {
	Category string  `json:"categoria"`
	Current  float64 `json:"actual"`
	Forecast float64 `json:"prediccion"`
}

// Dashboard is the full dashboard payload: live KPIs computed from the
// in-memory row sets, plus the static forecast blocks.
type Dashboard struct {
	KPIs              DashboardKPIs      `json:"kpis"`
	RecentSales       []RecentSale       `json:"ventasRecientes"`
	TopProducts       []TopProduct       `json:"productosTop"`
	MonthlyTrend      []MonthlyPoint     `json:"tendenciaMensual"`
	ProductForecasts  []ProductForecast  `json:"prediccionProductos"`
	CategoryForecasts []CategoryForecast `json:"prediccionCategorias"`
}

func fp(v float64) *float64 { return &v }

// ForecastMonthlyTrend is the fixed month-by-month series the dashboard
// charts. The trailing months carry forecast values only; the figures are
// constants, not the output of any model.
func ForecastMonthlyTrend() []MonthlyPoint {
	return []MonthlyPoint{
		{Month: "Jun", Actual: fp(32400)},
		{Month: "Jul", Actual: fp(35200)},
		{Month: "Ago", Actual: fp(38100)},
		{Month: "Sep", Actual: fp(41500)},
		{Month: "Oct", Actual: fp(43800)},
		{Month: "Nov", Actual: fp(45230), Forecast: fp(45230)},
		{Month: "Dic", Forecast: fp(48500)},
		{Month: "Ene", Forecast: fp(51200)},
		{Month: "Feb", Forecast: fp(53800)},
	}
}

// ForecastProducts is the fixed per-product forecast table.
func ForecastProducts() []ProductForecast {
	return []ProductForecast{
		{Product: "Grifo ISAGRIF A1", Current: 245, NextMonth: 285, Trend: "up", Confidence: 92},
		{Product: "Válvula FAVINSA 1/2\"", Current: 189, NextMonth: 210, Trend: "up", Confidence: 88},
		{Product: "Ducha TRAMONTINA", Current: 156, NextMonth: 145, Trend: "down", Confidence: 85},
		{Product: "Llave Angular FV", Current: 134, NextMonth: 165, Trend: "up", Confidence: 90},
	}
}

// ForecastCategories is the fixed per-category forecast table.
func ForecastCategories() []CategoryForecast {
	return []CategoryForecast{
		{Category: "Grifería", Current: 18500, Forecast: 21200},
		{Category: "Válvulas", Current: 12300, Forecast: 13800},
		{Category: "Accesorios", Current: 8900, Forecast: 9500},
		{Category: "Tuberías", Current: 5530, Forecast: 6100},
	}
}
