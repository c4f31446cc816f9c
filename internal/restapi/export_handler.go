package restapi

import (
	"bytes"
	"fmt"
	"net/http"

	"ferreteria.lasu.pe/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportResourceHandler streams the full row set of a resource as a
// spreadsheet download. The workbook is built in memory first so an
// export failure can still answer with a proper error status.
func (api *RestAPI) exportResourceHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := api.storeFromRequest(w, r)
	if !ok {
		return
	}
	spec := store.Spec()

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, spec.Name, spec.Columns, store.Rows()); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", spec.Name+".xlsx"))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		api.Logger.Error("failed to stream export", "resource", spec.Name, "error", err)
	}
}
