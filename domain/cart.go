package domain

// CartItem is a snapshot of a catalog product taken at the moment it
// was added to the cart. Later catalog edits do not propagate into it.
// A stored item always has a strictly positive quantity.
type CartItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Subtotal returns quantity times unit price.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}
