// model/cart.go
package model

const (
	MinQuantity = 1
	MaxQuantity = 30
)

// CartItem is a rentable product line in the cart. Price is rupiah per day.
type CartItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
