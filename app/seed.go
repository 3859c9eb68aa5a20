package app

import (
	"time"

	"storefront/domain"
)

// SeedProducts returns the demo catalog in its canonical order.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "P001", Name: "Laptop", Quantity: 10, Price: 999.99},
		{ID: "P002", Name: "Smartphone", Quantity: 15, Price: 699.99},
		{ID: "P003", Name: "Headphones", Quantity: 25, Price: 149.99},
		{ID: "P004", Name: "Monitor", Quantity: 8, Price: 299.99},
		{ID: "P005", Name: "Keyboard", Quantity: 4, Price: 89.99},
		{ID: "P006", Name: "Mouse", Quantity: 3, Price: 49.99},
		{ID: "P007", Name: "Tablet", Quantity: 12, Price: 399.99},
	}
}

// SeedPurchases returns the demo purchase history, oldest first.
func SeedPurchases() []domain.Purchase {
	return []domain.Purchase{
		{
			ID:            "1",
			CustomerID:    "c001",
			CustomerEmail: "customer@example.com",
			Items: []domain.PurchaseItem{
				{ProductID: "P001", ProductName: "Laptop", Quantity: 1, Price: 999.99},
				{ProductID: "P003", ProductName: "Headphones", Quantity: 1, Price: 149.99},
			},
			TotalAmount:  1149.98,
			PurchaseDate: time.Date(2025, time.April, 28, 14, 35, 22, 0, time.UTC),
		},
		{
			ID:            "2",
			CustomerID:    "c002",
			CustomerEmail: "emma@example.com",
			Items: []domain.PurchaseItem{
				{ProductID: "P002", ProductName: "Smartphone", Quantity: 1, Price: 699.99},
			},
			TotalAmount:  699.99,
			PurchaseDate: time.Date(2025, time.April, 29, 9, 12, 45, 0, time.UTC),
		},
		{
			ID:            "3",
			CustomerID:    "c001",
			CustomerEmail: "customer@example.com",
			Items: []domain.PurchaseItem{
				{ProductID: "P007", ProductName: "Tablet", Quantity: 1, Price: 399.99},
			},
			TotalAmount:  399.99,
			PurchaseDate: time.Date(2025, time.April, 29, 16, 23, 11, 0, time.UTC),
		},
	}
}
