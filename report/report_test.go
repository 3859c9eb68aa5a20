package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/domain"
)

func demoProducts() []domain.Product {
	return []domain.Product{
		{ID: "P001", Name: "Laptop", Quantity: 10, Price: 999.99},
		{ID: "P005", Name: "Keyboard", Quantity: 4, Price: 89.99},
		{ID: "P006", Name: "Mouse", Quantity: 3, Price: 49.99},
	}
}

func TestInventoryWritesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inventory(&buf, demoProducts(), 5))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(out), 1000)
}

func TestInventoryEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inventory(&buf, nil, 5))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestReceiptWritesPDF(t *testing.T) {
	purchase := domain.Purchase{
		ID:            "8d5a4f60-1111-2222-3333-444455556666",
		CustomerID:    "c001",
		CustomerEmail: "customer@example.com",
		Items: []domain.PurchaseItem{
			{ProductID: "P001", ProductName: "Laptop", Quantity: 1, Price: 999.99},
			{ProductID: "P003", ProductName: "Headphones", Quantity: 2, Price: 149.99},
		},
		TotalAmount:  1299.97,
		PurchaseDate: time.Date(2025, time.April, 28, 14, 35, 22, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Receipt(&buf, purchase, 0.10))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(out), 1000, "receipt embeds a QR image")
}

func TestReceiptZeroTaxRate(t *testing.T) {
	purchase := domain.Purchase{
		ID:           "r2",
		Items:        []domain.PurchaseItem{{ProductID: "a", ProductName: "A", Quantity: 1, Price: 10}},
		TotalAmount:  10,
		PurchaseDate: time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, Receipt(&buf, purchase, 0))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
