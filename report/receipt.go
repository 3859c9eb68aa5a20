package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"storefront/domain"
)

// Receipt writes a receipt for a completed purchase, with the tax
// surcharge broken out and a QR code encoding the purchase reference.
// Tax is display-only; the purchase's recorded total stays pre-tax.
func Receipt(w io.Writer, purchase domain.Purchase, taxRate float64) error {
	qrData := fmt.Sprintf("purchase=%s&ts=%d", purchase.ID, purchase.PurchaseDate.Unix())
	qr, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 7, fmt.Sprintf(
		"Receipt: %s\nCustomer: %s\nEmail: %s\nDate: %s",
		purchase.ID,
		purchase.CustomerID,
		purchase.CustomerEmail,
		purchase.PurchaseDate.Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(242, 242, 242)
	pdf.CellFormat(80, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range purchase.Items {
		pdf.CellFormat(80, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", float64(item.Quantity)*item.Price), "1", 1, "R", false, 0, "")
	}

	tax := purchase.TotalAmount * taxRate
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(135, 8, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", purchase.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.CellFormat(135, 8, fmt.Sprintf("Tax (%.0f%%)", taxRate*100), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", tax), "1", 1, "R", false, 0, "")
	pdf.CellFormat(135, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", purchase.TotalAmount+tax), "1", 1, "R", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 150, pdf.GetY()+10, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Thank you for your purchase.", "T", 0, "C", false, 0, "")

	return pdf.Output(w)
}
