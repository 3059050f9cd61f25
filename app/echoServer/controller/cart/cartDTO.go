package cart

type AddItemReq struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=30"`
}

type UpdateQuantityReq struct {
	Op       string `json:"op" validate:"omitempty,oneof=set increment decrement"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type SelectReq struct {
	IDs []int64 `json:"ids"`
}
