package models

// CartLine is one line item inside a cart
type CartLine struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Cart represents one transaction as returned by the remote service.
// DiscountedTotal is always less than or equal to Total.
type Cart struct {
	ID              int        `json:"id"`
	Total           float64    `json:"total"`
	DiscountedTotal float64    `json:"discountedTotal"`
	UserID          int        `json:"userId"`
	TotalProducts   int        `json:"totalProducts"`
	TotalQuantity   int        `json:"totalQuantity"`
	Products        []CartLine `json:"products"`
}
