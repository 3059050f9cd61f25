package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/repository/gateway"
	"github.com/PKL-SST-2025/camp-rent-sub000/service/cart"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmptySelection ErrCode = "EMPTY_SELECTION"
	ErrValidation     ErrCode = "VALIDATION"
	ErrPaymentFailed  ErrCode = "PAYMENT_FAILED"
)

type codedError struct {
	code  ErrCode
	cause error
}

func (e codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.code, e.cause)
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }
func (e codedError) Unwrap() error { return e.cause }

func makeErr(c ErrCode, cause error) error { return codedError{code: c, cause: cause} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type validationError struct {
	msgs []string
}

func (e validationError) Error() string      { return "checkout validation failed" }
func (e validationError) Code() ErrCode      { return ErrValidation }
func (e validationError) Messages() []string { return e.msgs }

// Messages returns the per-rule failure list of a validation error.
func Messages(err error) []string {
	var ve interface{ Messages() []string }
	if errors.As(err, &ve) {
		return ve.Messages()
	}
	return nil
}

// fees

var shippingFees = map[model.PaymentMethod]int64{
	model.PayTransfer: 2500,
	model.PayCOD:      10000,
	model.PayEwallet:  0,
}

func ShippingFee(m model.PaymentMethod) (int64, bool) {
	fee, ok := shippingFees[m]
	return fee, ok
}

// ServiceFee is floor(subtotal * 0.02).
func ServiceFee(subtotal int64) int64 { return subtotal * 2 / 100 }

type Quote struct {
	Items      []model.CartItem `json:"items"`
	Subtotal   int64            `json:"subtotal"`
	Shipping   int64            `json:"shipping"`
	ServiceFee int64            `json:"serviceFee"`
	Total      int64            `json:"total"`
}

// narrow repo surfaces owned by this service

type CartRepo interface {
	Selection(ctx context.Context) ([]model.CartItem, error)
	Clear(ctx context.Context, tx store.Tx) error
}

type OrderRepo interface {
	SaveSnapshot(ctx context.Context, tx store.Tx, o model.Order) error
	PrependHistory(ctx context.Context, tx store.Tx, o model.Order) error
	MergeRented(ctx context.Context, tx store.Tx, ids []int64) error
}

type RentalRepo interface {
	Append(ctx context.Context, tx store.Tx, entries []model.RentalEntry) error
}

type NotifRepo interface {
	Prepend(ctx context.Context, tx store.Tx, n model.Notification) error
}

type IDGen interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type Service interface {
	// Validate reports every step-1 rule failure; empty means valid.
	Validate(ctx context.Context, info model.CheckoutInfo) []string

	// Quote prices the current selection for the given payment method.
	Quote(ctx context.Context, method model.PaymentMethod) (*Quote, error)

	// Submit runs the whole wizard: validate, charge, then commit the order
	// fan-out as one atomic store update.
	Submit(ctx context.Context, info model.CheckoutInfo) (*model.Order, error)
}

type service struct {
	st      store.Store
	cartR   CartRepo
	orderR  OrderRepo
	rentalR RentalRepo
	notifR  NotifRepo
	gw      gateway.Gateway
	id      IDGen
	clock   Clock
}

func New(st store.Store, cr CartRepo, or OrderRepo, rr RentalRepo, nr NotifRepo, gw gateway.Gateway, id IDGen, clock Clock) Service {
	return &service{st: st, cartR: cr, orderR: or, rentalR: rr, notifR: nr, gw: gw, id: id, clock: clock}
}

func (s *service) Validate(ctx context.Context, info model.CheckoutInfo) []string {
	return ValidateInfo(info, s.clock.Now())
}

func (s *service) Quote(ctx context.Context, method model.PaymentMethod) (*Quote, error) {
	items, err := s.cartR.Selection(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, makeErr(ErrEmptySelection, nil)
	}
	shipping, ok := ShippingFee(method)
	if !ok {
		return nil, validationError{msgs: []string{"payment method must be transfer, cod, or ewallet"}}
	}
	subtotal := cart.Subtotal(items)
	return &Quote{
		Items:      items,
		Subtotal:   subtotal,
		Shipping:   shipping,
		ServiceFee: ServiceFee(subtotal),
		Total:      subtotal + shipping + ServiceFee(subtotal),
	}, nil
}

func (s *service) Submit(ctx context.Context, info model.CheckoutInfo) (*model.Order, error) {
	items, err := s.cartR.Selection(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, makeErr(ErrEmptySelection, nil)
	}

	w := NewWizard()
	if msgs := ValidateInfo(info, s.clock.Now()); len(msgs) > 0 {
		// wizard stays on the info step
		return nil, validationError{msgs: msgs}
	}
	if err := w.ToReview(nil); err != nil {
		return nil, err
	}
	if err := w.ToPayment(); err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal(items)
	shipping, _ := ShippingFee(info.PaymentMethod)
	total := subtotal + shipping + ServiceFee(subtotal)

	if _, err := s.gw.Charge(ctx, info.PaymentMethod, total); err != nil {
		// wizard stays on the payment step, cart untouched
		return nil, makeErr(ErrPaymentFailed, err)
	}

	now := s.clock.Now().UTC()
	order := s.buildOrder(info, items, subtotal, shipping, total, now)
	entries := buildRentalEntries(order, info, now)

	err = s.st.Update(func(tx store.Tx) error {
		if err := s.orderR.SaveSnapshot(ctx, tx, order); err != nil {
			return err
		}
		if err := s.rentalR.Append(ctx, tx, entries); err != nil {
			return err
		}
		if err := s.orderR.PrependHistory(ctx, tx, order); err != nil {
			return err
		}
		ids := make([]int64, 0, len(order.Items))
		for _, it := range order.Items {
			ids = append(ids, it.ID)
		}
		if err := s.orderR.MergeRented(ctx, tx, ids); err != nil {
			return err
		}
		if err := s.cartR.Clear(ctx, tx); err != nil {
			return err
		}
		return s.notifR.Prepend(ctx, tx, model.Notification{
			ID:        s.id.NewID(),
			Type:      model.NotifSuccess,
			Title:     "Pembayaran berhasil",
			Message:   fmt.Sprintf("Pesanan %s sedang diproses", order.OrderID),
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := w.Complete(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *service) buildOrder(info model.CheckoutInfo, items []model.CartItem, subtotal, shipping, total int64, now time.Time) model.Order {
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, model.OrderItem{
			ID:        it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Category:  it.Category,
			Image:     it.Image,
			Quantity:  it.Quantity,
			LineTotal: it.Price * int64(it.Quantity),
		})
	}
	return model.Order{
		OrderID:   s.id.NewID(),
		OrderDate: now,
		Customer: model.CustomerInfo{
			Name:    info.Name,
			Email:   info.Email,
			Phone:   info.Phone,
			Address: info.Address,
		},
		Items:         orderItems,
		Subtotal:      subtotal,
		Shipping:      shipping,
		ServiceFee:    ServiceFee(subtotal),
		Total:         total,
		Status:        model.StatusDiproses,
		PaymentMethod: info.PaymentMethod,
		RentalDate:    info.RentalDate,
		ReturnDate:    info.ReturnDate,
	}
}

// one rental-history entry per order line, keyed orderId + "-" + itemId
func buildRentalEntries(order model.Order, info model.CheckoutInfo, now time.Time) []model.RentalEntry {
	days := rentalDays(info.RentalDate, info.ReturnDate)
	entries := make([]model.RentalEntry, 0, len(order.Items))
	for _, it := range order.Items {
		entries = append(entries, model.RentalEntry{
			ID:            fmt.Sprintf("%s-%d", order.OrderID, it.ID),
			OrderID:       order.OrderID,
			Name:          it.Name,
			Date:          info.RentalDate,
			ReturnDate:    info.ReturnDate,
			Duration:      days,
			Price:         it.LineTotal,
			Status:        model.StatusDiproses,
			CustomerName:  info.Name,
			PaymentMethod: info.PaymentMethod,
			CreatedAt:     now,
			IsPaid:        true,
		})
	}
	return entries
}
