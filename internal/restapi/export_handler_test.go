package restapi

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportResourceProducesWorkbook(t *testing.T) {
	server, token := serveTestAPI(t)

	resp := getJSON(t, server, "/api/ferreteria/export/products", token)
	defer resp.Body.Close() // nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "products.xlsx")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close() // nolint

	rows, err := f.GetRows("products")
	require.NoError(t, err)

	// Header plus the eight product rows.
	require.Len(t, rows, 9)
	assert.Equal(t, "idProduc", rows[0][0])
}

func TestExportResourceStripsExtensionSuffix(t *testing.T) {
	server, token := serveTestAPI(t)

	resp := getJSON(t, server, "/api/ferreteria/export/clients.xlsx", token)
	defer resp.Body.Close() // nolint:errcheck
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
}

func TestExportUnknownResourceIs404(t *testing.T) {
	server, token := serveTestAPI(t)

	resp := getJSON(t, server, "/api/ferreteria/export/no-such-thing", token)
	defer resp.Body.Close() // nolint:errcheck
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
