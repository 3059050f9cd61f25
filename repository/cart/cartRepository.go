// repository/cart/repo.go
package cart

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	Items(ctx context.Context) ([]model.CartItem, error)
	SaveItems(ctx context.Context, items []model.CartItem) error

	// Selection is the subset of cart lines staged for checkout.
	Selection(ctx context.Context) ([]model.CartItem, error)
	SaveSelection(ctx context.Context, items []model.CartItem) error

	// Clear wipes both the cart and the selection inside a commit.
	Clear(ctx context.Context, tx store.Tx) error
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

// A corrupt blob degrades to the empty collection rather than failing the read.
func loadItems(tx store.Tx, key string) []model.CartItem {
	var items []model.CartItem
	if _, err := tx.Get(key, &items); err != nil {
		return nil
	}
	return items
}

func (r *repo) Items(ctx context.Context) ([]model.CartItem, error) {
	return loadItems(r.st, store.KeyCart), nil
}

func (r *repo) SaveItems(ctx context.Context, items []model.CartItem) error {
	return r.st.Set(store.KeyCart, items)
}

func (r *repo) Selection(ctx context.Context) ([]model.CartItem, error) {
	return loadItems(r.st, store.KeyCheckoutItems), nil
}

func (r *repo) SaveSelection(ctx context.Context, items []model.CartItem) error {
	return r.st.Set(store.KeyCheckoutItems, items)
}

func (r *repo) Clear(ctx context.Context, tx store.Tx) error {
	if err := tx.Remove(store.KeyCart); err != nil {
		return err
	}
	return tx.Remove(store.KeyCheckoutItems)
}
