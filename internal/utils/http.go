package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a named route parameter from the request context
// and removes file extensions like ".json" or ".xlsx".
func ExtractParam(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	for _, ext := range []string{".json", ".xlsx", ".pdf"} {
		raw = strings.Split(raw, ext)[0]
	}
	return raw
}
