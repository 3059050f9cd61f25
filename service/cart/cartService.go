package cart

import (
	"context"
	"errors"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

var ErrNotFound = errors.New("cart item not found")

type Repo interface {
	Items(ctx context.Context) ([]model.CartItem, error)
	SaveItems(ctx context.Context, items []model.CartItem) error
	Selection(ctx context.Context) ([]model.CartItem, error)
	SaveSelection(ctx context.Context, items []model.CartItem) error
}

type Service interface {
	List(ctx context.Context) ([]model.CartItem, error)
	Add(ctx context.Context, item model.CartItem) error
	SetQuantity(ctx context.Context, id int64, quantity int) (int, error)
	Increment(ctx context.Context, id int64) (int, error)
	Decrement(ctx context.Context, id int64) (int, error)
	Remove(ctx context.Context, id int64) error

	// Select stages the given cart lines for checkout; checkout only ever
	// sees the staged subset.
	Select(ctx context.Context, ids []int64) ([]model.CartItem, error)
	Selection(ctx context.Context) ([]model.CartItem, error)
}

// Subtotal is Σ price·quantity over the given lines.
func Subtotal(items []model.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum
}

type service struct {
	r Repo
}

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.CartItem, error) {
	return s.r.Items(ctx)
}

// Add merges by product id: adding an item already in the cart bumps its
// quantity instead of duplicating the line.
func (s *service) Add(ctx context.Context, item model.CartItem) error {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.Quantity = model.ClampQuantity(item.Quantity)

	items, err := s.r.Items(ctx)
	if err != nil {
		return err
	}
	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity = model.ClampQuantity(items[i].Quantity + item.Quantity)
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return s.r.SaveItems(ctx, items)
}

func (s *service) SetQuantity(ctx context.Context, id int64, quantity int) (int, error) {
	return s.adjust(ctx, id, func(int) int { return quantity })
}

func (s *service) Increment(ctx context.Context, id int64) (int, error) {
	return s.adjust(ctx, id, func(q int) int { return q + 1 })
}

func (s *service) Decrement(ctx context.Context, id int64) (int, error) {
	return s.adjust(ctx, id, func(q int) int { return q - 1 })
}

// adjust applies fn to the line's quantity and clamps the result into
// [1,30]; moves past either bound are no-ops.
func (s *service) adjust(ctx context.Context, id int64, fn func(int) int) (int, error) {
	items, err := s.r.Items(ctx)
	if err != nil {
		return 0, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Quantity = model.ClampQuantity(fn(items[i].Quantity))
		if err := s.r.SaveItems(ctx, items); err != nil {
			return 0, err
		}
		return items[i].Quantity, nil
	}
	return 0, ErrNotFound
}

// Remove drops the line from the cart and from the checkout selection.
func (s *service) Remove(ctx context.Context, id int64) error {
	items, err := s.r.Items(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.r.SaveItems(ctx, kept); err != nil {
		return err
	}

	sel, err := s.r.Selection(ctx)
	if err != nil {
		return err
	}
	keptSel := sel[:0]
	for _, it := range sel {
		if it.ID != id {
			keptSel = append(keptSel, it)
		}
	}
	return s.r.SaveSelection(ctx, keptSel)
}

func (s *service) Select(ctx context.Context, ids []int64) ([]model.CartItem, error) {
	items, err := s.r.Items(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var sel []model.CartItem
	for _, it := range items {
		if want[it.ID] {
			sel = append(sel, it)
		}
	}
	if err := s.r.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *service) Selection(ctx context.Context) ([]model.CartItem, error) {
	return s.r.Selection(ctx)
}
