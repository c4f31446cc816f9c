package docgen

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferreteria.lasu.pe/internal/models"
)

func testDocument() models.SaleDocument {
	return models.SaleDocument{
		SaleID:         "VENTA-1021",
		Date:           "2025-08-21",
		ClientName:     "Comercial Rivera SAC",
		ClientRUC:      "20456789012",
		ClientRef:      "Av. Grau 340",
		District:       "La Victoria",
		PaymentMethod:  "Transferencia",
		SaleType:       "Crédito",
		Total:          decimal.NewFromFloat(890.00),
		InitialPayment: decimal.NewFromFloat(300.00),
		Balance:        decimal.NewFromFloat(590.00),
		Owner: models.OwnerInfo{
			Name:     "Luis Alberto Soto Urbina",
			Business: "VENTA DE ARTICULOS DE FERRETERIA EN GENERAL",
			Phone:    "987654321",
			Address:  "Jr. Paruro 1234 - Cercado de Lima",
		},
		Lines: []models.DocumentLine{
			{Quantity: 10, Description: "Ducha TRAMONTINA", UnitPrice: decimal.NewFromFloat(89.00), Subtotal: decimal.NewFromFloat(890.00)},
		},
	}
}

func TestRenderSaleDocumentProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSaleDocument(&buf, testDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderSaleDocumentHandlesCashSaleWithoutLines(t *testing.T) {
	doc := testDocument()
	doc.SaleType = "Contado"
	doc.Lines = nil
	doc.ClientRUC = ""
	doc.District = ""
	doc.PaymentMethod = ""

	var buf bytes.Buffer
	err := RenderSaleDocument(&buf, doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSerial(t *testing.T) {
	assert.Equal(t, "-1021", serial("VENTA-1021"))
	assert.Equal(t, "87", serial("87"))
}
