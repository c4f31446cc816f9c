package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

// requireSession gates a handler behind an active session token.
func requireSession(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidSession(r) {
			api.invalidSessionResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Routes wires every endpoint. Login, register and the health probe are
// the only routes reachable without a session.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.Handler(http.MethodPost, "/api/ferreteria/login", http.HandlerFunc(api.loginHandler))
	router.Handler(http.MethodPost, "/api/ferreteria/register", http.HandlerFunc(api.registerHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/health.json", http.HandlerFunc(api.healthHandler))

	router.Handler(http.MethodPost, "/api/ferreteria/logout", requireSession(api, api.logoutHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/session.json", requireSession(api, api.sessionHandler))

	router.Handler(http.MethodGet, "/api/ferreteria/dashboard.json", requireSession(api, api.dashboardHandler))

	router.Handler(http.MethodGet, "/api/ferreteria/resources/:resource", requireSession(api, api.listResourceHandler))
	router.Handler(http.MethodPost, "/api/ferreteria/resources/:resource", requireSession(api, api.createResourceHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/resources/:resource/:id", requireSession(api, api.getResourceHandler))
	router.Handler(http.MethodPut, "/api/ferreteria/resources/:resource/:id", requireSession(api, api.updateResourceHandler))
	router.Handler(http.MethodDelete, "/api/ferreteria/resources/:resource/:id", requireSession(api, api.deleteResourceHandler))

	router.Handler(http.MethodPost, "/api/ferreteria/sales", requireSession(api, api.createSaleHandler))
	router.Handler(http.MethodPut, "/api/ferreteria/sales/:id", requireSession(api, api.updateSaleHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/sales/:id/lines.json", requireSession(api, api.saleLinesHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/sales/:id/document.pdf", requireSession(api, api.saleDocumentHandler))

	router.Handler(http.MethodPost, "/api/ferreteria/purchases", requireSession(api, api.createPurchaseHandler))
	router.Handler(http.MethodPut, "/api/ferreteria/purchases/:id", requireSession(api, api.updatePurchaseHandler))
	router.Handler(http.MethodGet, "/api/ferreteria/purchases/:id/lines.json", requireSession(api, api.purchaseLinesHandler))

	router.Handler(http.MethodGet, "/api/ferreteria/payments/outstanding.json", requireSession(api, api.outstandingSalesHandler))
	router.Handler(http.MethodPost, "/api/ferreteria/payments", requireSession(api, api.createPaymentHandler))

	router.Handler(http.MethodGet, "/api/ferreteria/export/:resource", requireSession(api, api.exportResourceHandler))

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
