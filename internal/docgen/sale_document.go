// Package docgen renders the printable order guide for a sale: a fixed
// two-copy layout, buyer copy above issuer copy, on a single page.
package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"ferreteria.lasu.pe/internal/models"
)

const (
	buyerCopyLabel  = "COPIA: CLIENTE"
	issuerCopyLabel = "COPIA: EMISOR"
)

// RenderSaleDocument writes the two-copy PDF for a sale to w.
func RenderSaleDocument(w io.Writer, doc models.SaleDocument) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawGuide(pdf, tr, doc, buyerCopyLabel)
	pdf.Ln(8)
	drawGuide(pdf, tr, doc, issuerCopyLabel)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("error rendering sale document: %w", err)
	}
	return nil
}

func drawGuide(pdf *fpdf.Fpdf, tr func(string) string, doc models.SaleDocument, copyLabel string) {
	// Header: business description and owner on the left, guide box on
	// the right with the serial derived from the sale id.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(130, 4, tr(doc.Owner.Business), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "GUIA DE PEDIDOS", "1", 1, "C", false, 0, "")
	pdf.CellFormat(130, 4, tr("DE: "+strings.ToUpper(doc.Owner.Name)), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 5, tr("002 - "+serial(doc.SaleID)), "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(190, 4, tr("TEL: "+doc.Owner.Phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 4, tr(doc.Owner.Address), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Client block.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(25, 4, "CLIENTE:", "LT", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(165, 4, tr(doc.ClientName), "TR", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(25, 4, "RUC:", "LB", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(55, 4, tr(orNA(doc.ClientRUC)), "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(20, 4, "REF:", "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(50, 4, tr(orNA(doc.ClientRef)), "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(15, 4, "FECHA:", "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(25, 4, tr(doc.Date), "RB", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(25, 4, "DIRECCION:", "LB", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(75, 4, tr(orNA(doc.District)), "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(30, 4, "METODO PAGO:", "B", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(60, 4, tr(orNA(doc.PaymentMethod)), "RB", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Line table.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(19, 5, "CANT.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(104, 5, "DESCRIPCION", "1", 0, "C", false, 0, "")
	pdf.CellFormat(33, 5, "P. UNIT", "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 5, "IMPORTE", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range doc.Lines {
		pdf.CellFormat(19, 5, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(104, 5, tr(line.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(33, 5, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 5, line.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(156, 5, "TOTAL S/", "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 5, doc.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	// Credit box only for credit sales.
	if strings.EqualFold(doc.SaleType, "Credito") || strings.EqualFold(doc.SaleType, "Crédito") {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(190, 4, "VENTA AL CREDITO", "1", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(95, 4, "A CUENTA: S/ "+doc.InitialPayment.StringFixed(2), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 4, "SALDO: S/ "+doc.Balance.StringFixed(2), "RB", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(200, 0, 0)
	pdf.CellFormat(190, 4, copyLabel, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// serial keeps the last five characters of the sale id for the guide box.
func serial(id string) string {
	if len(id) <= 5 {
		return id
	}
	return id[len(id)-5:]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
