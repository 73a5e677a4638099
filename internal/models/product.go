package models

// Product represents one inventory item as returned by the remote service
type Product struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	Stock     int     `json:"stock"`
}
