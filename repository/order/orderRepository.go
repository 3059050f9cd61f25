// repository/order/repo.go
package order

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	// Snapshot is the last completed order, used by the receipt view.
	Snapshot(ctx context.Context) (*model.Order, error)
	SaveSnapshot(ctx context.Context, tx store.Tx, o model.Order) error

	// History is newest-first.
	History(ctx context.Context) ([]model.Order, error)
	PrependHistory(ctx context.Context, tx store.Tx, o model.Order) error

	// Rented product ids, deduplicated; gates review eligibility.
	RentedIDs(ctx context.Context) ([]int64, error)
	HasRented(ctx context.Context, productID int64) (bool, error)
	MergeRented(ctx context.Context, tx store.Tx, ids []int64) error
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func (r *repo) Snapshot(ctx context.Context) (*model.Order, error) {
	var o model.Order
	found, err := r.st.Get(store.KeyCheckoutData, &o)
	if err != nil || !found {
		return nil, nil
	}
	return &o, nil
}

func (r *repo) SaveSnapshot(ctx context.Context, tx store.Tx, o model.Order) error {
	return tx.Set(store.KeyCheckoutData, o)
}

func (r *repo) History(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if _, err := r.st.Get(store.KeyOrderHistory, &orders); err != nil {
		return nil, nil
	}
	return orders, nil
}

func (r *repo) PrependHistory(ctx context.Context, tx store.Tx, o model.Order) error {
	var orders []model.Order
	if _, err := tx.Get(store.KeyOrderHistory, &orders); err != nil {
		orders = nil
	}
	orders = append([]model.Order{o}, orders...)
	return tx.Set(store.KeyOrderHistory, orders)
}

func (r *repo) RentedIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if _, err := r.st.Get(store.KeyRentedHistory, &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

func (r *repo) HasRented(ctx context.Context, productID int64) (bool, error) {
	ids, _ := r.RentedIDs(ctx)
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *repo) MergeRented(ctx context.Context, tx store.Tx, ids []int64) error {
	var have []int64
	if _, err := tx.Get(store.KeyRentedHistory, &have); err != nil {
		have = nil
	}
	seen := make(map[int64]bool, len(have))
	for _, id := range have {
		seen[id] = true
	}
	for _, id := range ids {
		if !seen[id] {
			have = append(have, id)
			seen[id] = true
		}
	}
	return tx.Set(store.KeyRentedHistory, have)
}
