package restapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/flatfile"
	"ferreteria.lasu.pe/internal/models"
)

// Balances below this threshold count as settled; the source data carries
// rounding noise from its float history.
var balanceEpsilon = decimal.NewFromFloat(0.1)

type pendingSale struct {
	SaleID     string  `json:"idVenta"`
	ClientName string  `json:"nomCliente"`
	Balance    float64 `json:"saldoPendiente"`
}

type outstandingData struct {
	Pending        []pendingSale `json:"pendientes"`
	CollectedToday float64       `json:"totalHoy"`
	CollectedMonth float64       `json:"totalMes"`
}

// saleBalance computes what is still owed on a sale: total minus the
// initial payment minus every recorded payment.
func (api *RestAPI) saleBalance(sale flatfile.Row) decimal.Decimal {
	balance := dataset.Money(sale[fieldTotal]).Sub(dataset.Money(sale[fieldInitialPayment]))

	saleID := flatfile.String(sale[fieldSaleID])
	for _, payment := range api.linesFor(dataset.ResourcePayments, fieldSaleID, saleID) {
		balance = balance.Sub(dataset.Money(payment[fieldPaymentAmount]))
	}
	return balance
}

// outstandingSalesHandler lists the sales still carrying a balance, plus
// the amounts collected today and this month.
func (api *RestAPI) outstandingSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, ok := api.Manager.Store(dataset.ResourceSales)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	pending := []pendingSale{}
	for _, sale := range sales.Rows() {
		if flatfile.String(sale[fieldPaymentState]) == statePaid {
			continue
		}
		balance := api.saleBalance(sale)
		if balance.GreaterThan(balanceEpsilon) {
			pending = append(pending, pendingSale{
				SaleID:     flatfile.String(sale[fieldSaleID]),
				ClientName: flatfile.String(sale[fieldSaleClient]),
				Balance:    balance.InexactFloat64(),
			})
		}
	}

	today := todayDate()
	month := today[:7]
	collectedToday := decimal.Zero
	collectedMonth := decimal.Zero
	if payments, ok := api.Manager.Store(dataset.ResourcePayments); ok {
		for _, payment := range payments.Rows() {
			date := flatfile.String(payment[fieldPaymentDate])
			amount := dataset.Money(payment[fieldPaymentAmount])
			if date == today {
				collectedToday = collectedToday.Add(amount)
			}
			if strings.HasPrefix(date, month) {
				collectedMonth = collectedMonth.Add(amount)
			}
		}
	}

	api.sendResponse(w, r, models.NewOKResponse(outstandingData{
		Pending:        pending,
		CollectedToday: collectedToday.InexactFloat64(),
		CollectedMonth: collectedMonth.InexactFloat64(),
	}))
}

// createPaymentHandler records a payment against a pending sale. When the
// payment clears the remaining balance the sale flips to Pagado.
func (api *RestAPI) createPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.badRequestResponse(w, r, "invalid request body")
		return
	}

	fieldErrors := make(map[string][]string)
	if req.SaleID == "" {
		fieldErrors[fieldSaleID] = append(fieldErrors[fieldSaleID], "Field \"idVenta\" is required.")
	}
	if req.PaymentMethodID == "" {
		fieldErrors[fieldMethodID] = append(fieldErrors[fieldMethodID], "Field \"idMetodoPago\" is required.")
	}
	if req.Amount <= 0 {
		fieldErrors[fieldPaymentAmount] = append(fieldErrors[fieldPaymentAmount], "Field \"montoPago\" must be positive.")
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	sales, ok := api.Manager.Store(dataset.ResourceSales)
	if !ok {
		api.sendNotFound(w, r)
		return
	}
	sale, ok := sales.Get(req.SaleID)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	date := req.Date
	if date == "" {
		date = todayDate()
	}

	row, err := api.Manager.CreateRow(dataset.ResourcePayments, flatfile.Row{
		fieldSaleID:        req.SaleID,
		fieldPaymentDate:   date,
		fieldPaymentAmount: req.Amount,
		fieldMethodID:      req.PaymentMethodID,
		fieldSaleClient:    flatfile.String(sale[fieldSaleClient]),
	})
	if err != nil {
		api.resourceErrorResponse(w, r, err)
		return
	}

	if api.saleBalance(sale).LessThanOrEqual(balanceEpsilon) {
		settled := sale.Clone()
		settled[fieldPaymentState] = statePaid
		if _, err := sales.Update(req.SaleID, settled); err != nil {
			api.Logger.Error("failed to settle sale", "sale", req.SaleID, "error", err)
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(row))
}
