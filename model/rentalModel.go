// model/rental.go
package model

import "time"

type RentalStatus string

const (
	StatusDiproses RentalStatus = "Diproses"
	StatusDikirim  RentalStatus = "Dikirim"
	StatusSelesai  RentalStatus = "Selesai"
)

// Next returns the following fulfillment status. Selesai is terminal; the
// progression never skips and never reverses.
func (s RentalStatus) Next() (RentalStatus, bool) {
	switch s {
	case StatusDiproses:
		return StatusDikirim, true
	case StatusDikirim:
		return StatusSelesai, true
	}
	return s, false
}

// RentalEntry is one rented line of one order, tracked through the 3-stage
// fulfillment status. ID is orderId + "-" + itemId.
type RentalEntry struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"orderId"`
	Name          string        `json:"name"`
	Date          string        `json:"date"`
	ReturnDate    string        `json:"returnDate"`
	Duration      int           `json:"duration"`
	Price         int64         `json:"price"`
	Status        RentalStatus  `json:"status"`
	CustomerName  string        `json:"customerName"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CreatedAt     time.Time     `json:"createdAt"`
	IsPaid        bool          `json:"isPaid"`
}
