// service/cart/cart_service_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

type mockRepo struct {
	items     []model.CartItem
	selection []model.CartItem

	itemsErr error
	saveErr  error
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) Items(ctx context.Context) ([]model.CartItem, error) {
	return m.items, m.itemsErr
}

func (m *mockRepo) SaveItems(ctx context.Context, items []model.CartItem) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = items
	return nil
}

func (m *mockRepo) Selection(ctx context.Context) ([]model.CartItem, error) {
	return m.selection, nil
}

func (m *mockRepo) SaveSelection(ctx context.Context, items []model.CartItem) error {
	m.selection = items
	return nil
}

func tenda() model.CartItem {
	return model.CartItem{ID: 1, Name: "Tenda Dome 4P", Price: 50000, Category: "tenda", Quantity: 1}
}

// --- tests ---

func TestAdd_NewLine_DefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{}
	svc := New(m)

	it := tenda()
	it.Quantity = 0
	require.NoError(t, svc.Add(ctx, it))

	require.Len(t, m.items, 1)
	require.Equal(t, 1, m.items[0].Quantity)
}

func TestAdd_ExistingLine_MergesQuantity(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{items: []model.CartItem{tenda()}}
	svc := New(m)

	it := tenda()
	it.Quantity = 3
	require.NoError(t, svc.Add(ctx, it))

	require.Len(t, m.items, 1)
	require.Equal(t, 4, m.items[0].Quantity)
}

func TestAdd_MergeClampsAtMax(t *testing.T) {
	ctx := context.Background()
	it := tenda()
	it.Quantity = 29
	m := &mockRepo{items: []model.CartItem{it}}
	svc := New(m)

	add := tenda()
	add.Quantity = 10
	require.NoError(t, svc.Add(ctx, add))

	require.Equal(t, model.MaxQuantity, m.items[0].Quantity)
}

func TestSetQuantity_ClampsIntoRange(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{items: []model.CartItem{tenda()}}
	svc := New(m)

	q, err := svc.SetQuantity(ctx, 1, 99)
	require.NoError(t, err)
	require.Equal(t, model.MaxQuantity, q)

	q, err = svc.SetQuantity(ctx, 1, -5)
	require.NoError(t, err)
	require.Equal(t, model.MinQuantity, q)
}

func TestDecrement_AtMinIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{items: []model.CartItem{tenda()}}
	svc := New(m)

	q, err := svc.Decrement(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.MinQuantity, q)
}

func TestIncrement_AtMaxIsNoOp(t *testing.T) {
	ctx := context.Background()
	it := tenda()
	it.Quantity = model.MaxQuantity
	m := &mockRepo{items: []model.CartItem{it}}
	svc := New(m)

	q, err := svc.Increment(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, model.MaxQuantity, q)
}

func TestAdjust_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{})

	_, err := svc.Increment(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemove_AlsoDropsFromSelection(t *testing.T) {
	ctx := context.Background()
	other := model.CartItem{ID: 2, Name: "Matras Camping", Price: 8000, Quantity: 2}
	m := &mockRepo{
		items:     []model.CartItem{tenda(), other},
		selection: []model.CartItem{tenda(), other},
	}
	svc := New(m)

	require.NoError(t, svc.Remove(ctx, 1))

	require.Len(t, m.items, 1)
	require.Equal(t, int64(2), m.items[0].ID)
	require.Len(t, m.selection, 1)
	require.Equal(t, int64(2), m.selection[0].ID)
}

func TestRemove_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{items: []model.CartItem{tenda()}})

	require.ErrorIs(t, svc.Remove(ctx, 99), ErrNotFound)
}

func TestSelect_KeepsOnlyRequestedLines(t *testing.T) {
	ctx := context.Background()
	other := model.CartItem{ID: 2, Name: "Matras Camping", Price: 8000, Quantity: 2}
	m := &mockRepo{items: []model.CartItem{tenda(), other}}
	svc := New(m)

	sel, err := svc.Select(ctx, []int64{2})
	require.NoError(t, err)
	require.Len(t, sel, 1)
	require.Equal(t, int64(2), sel[0].ID)
	require.Equal(t, sel, m.selection)
}

func TestSubtotal(t *testing.T) {
	items := []model.CartItem{
		{ID: 1, Price: 50000, Quantity: 2},
		{ID: 2, Price: 8000, Quantity: 3},
	}
	require.Equal(t, int64(124000), Subtotal(items))
	require.Equal(t, int64(0), Subtotal(nil))
}
