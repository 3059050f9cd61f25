// model/order.go
package model

import "time"

type PaymentMethod string

const (
	PayTransfer PaymentMethod = "transfer"
	PayCOD      PaymentMethod = "cod"
	PayEwallet  PaymentMethod = "ewallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayTransfer, PayCOD, PayEwallet:
		return true
	}
	return false
}

// CustomerInfo is the customer block embedded into an order.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CheckoutInfo is the step-1 form of the checkout wizard. It is transient:
// validated, folded into the order on submit, never persisted on its own.
type CheckoutInfo struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Agreement     bool          `json:"agreement"`
	RentalDate    string        `json:"rentalDate"`
	ReturnDate    string        `json:"returnDate"`
}

// OrderItem is a cart line frozen into an order, with its computed line total.
type OrderItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

type Order struct {
	OrderID       string        `json:"orderId"`
	OrderDate     time.Time     `json:"orderDate"`
	Customer      CustomerInfo  `json:"customerInfo"`
	Items         []OrderItem   `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Shipping      int64         `json:"shipping"`
	ServiceFee    int64         `json:"serviceFee"`
	Total         int64         `json:"total"`
	Status        RentalStatus  `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	RentalDate    string        `json:"rentalDate"`
	ReturnDate    string        `json:"returnDate"`
}
