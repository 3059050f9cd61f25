package product

type CreateProductReq struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
