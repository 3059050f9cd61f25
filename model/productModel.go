// model/product.go
package model

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"` // rupiah per day
	Image       string `json:"image"`
	Description string `json:"description"`
}
