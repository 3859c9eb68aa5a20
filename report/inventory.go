// Package report renders read-only projections of store state as PDF
// documents. Nothing here mutates a store.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"storefront/domain"
)

// Inventory writes an inventory status report for the given products.
// Rows are sorted by product ID; quantities below the threshold are
// flagged as LOW STOCK and tinted.
func Inventory(w io.Writer, products []domain.Product, threshold int) error {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Inventory Status Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("02 Jan 2006 15:04"), "B", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	cols := []struct {
		title string
		width float64
	}{
		{"Product ID", 30},
		{"Product Name", 60},
		{"Quantity", 25},
		{"Price", 30},
		{"Status", 35},
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(242, 242, 242)
	for _, col := range cols {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, p := range sorted {
		low := p.Quantity < threshold
		status := "In Stock"
		if low {
			status = "LOW STOCK"
			pdf.SetFillColor(255, 240, 240)
			pdf.SetTextColor(211, 47, 47)
		} else {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetTextColor(0, 0, 0)
		}
		cells := []string{
			p.ID,
			p.Name,
			strconv.Itoa(p.Quantity),
			fmt.Sprintf("$%.2f", p.Price),
			status,
		}
		for i, cell := range cells {
			pdf.CellFormat(cols[i].width, 8, cell, "1", 0, "L", low, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	var totalItems, lowCount int
	var totalValue float64
	for _, p := range products {
		totalItems += p.Quantity
		totalValue += float64(p.Quantity) * p.Price
		if p.Quantity < threshold {
			lowCount++
		}
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Inventory Summary", "T", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Total Products: %d\nTotal Items: %d\nLow Stock Items: %d\nTotal Inventory Value: $%.2f",
		len(products), totalItems, lowCount, totalValue,
	), "", "L", false)

	return pdf.Output(w)
}
