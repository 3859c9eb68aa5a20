package domain

import "time"

// PurchaseItem is one line of a completed purchase, frozen at checkout.
type PurchaseItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Purchase records one completed checkout. Entries are append-only:
// once created they are never mutated or deleted, and TotalAmount stays
// whatever the item sum was at creation time.
type Purchase struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	CustomerEmail string         `json:"customerEmail"`
	Items         []PurchaseItem `json:"items"`
	TotalAmount   float64        `json:"totalAmount"`
	PurchaseDate  time.Time      `json:"purchaseDate"`
}
