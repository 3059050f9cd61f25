// service/rental/rental_service_test.go
package rental

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

type mockRepo struct {
	entries  map[string]*model.RentalEntry
	listFn   func(ctx context.Context) ([]model.RentalEntry, error)
	updateFn func(ctx context.Context, id string, status model.RentalStatus) error
}

var _ Repo = (*mockRepo)(nil)

func (m *mockRepo) List(ctx context.Context) ([]model.RentalEntry, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockRepo) ByID(ctx context.Context, id string) (*model.RentalEntry, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status model.RentalStatus) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, status)
	}
	m.entries[id].Status = status
	return nil
}

func entry(id string, status model.RentalStatus) *model.RentalEntry {
	return &model.RentalEntry{ID: id, OrderID: "ord-1", Name: "Tenda Dome 4P", Status: status}
}

// --- tests ---

func TestTrack_Found(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{entries: map[string]*model.RentalEntry{"ord-1-1": entry("ord-1-1", model.StatusDiproses)}}
	svc := New(m)

	e, err := svc.Track(ctx, "ord-1-1")
	require.NoError(t, err)
	require.Equal(t, model.StatusDiproses, e.Status)
}

func TestTrack_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{entries: map[string]*model.RentalEntry{}})

	_, err := svc.Track(ctx, "nope")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestAdvance_MovesExactlyOneStep(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{entries: map[string]*model.RentalEntry{"ord-1-1": entry("ord-1-1", model.StatusDiproses)}}
	svc := New(m)

	e, err := svc.Advance(ctx, "ord-1-1")
	require.NoError(t, err)
	require.Equal(t, model.StatusDikirim, e.Status)

	e, err = svc.Advance(ctx, "ord-1-1")
	require.NoError(t, err)
	require.Equal(t, model.StatusSelesai, e.Status)
}

func TestAdvance_SelesaiIsTerminal(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{entries: map[string]*model.RentalEntry{"ord-1-1": entry("ord-1-1", model.StatusSelesai)}}
	svc := New(m)

	_, err := svc.Advance(ctx, "ord-1-1")
	require.Error(t, err)
	require.Equal(t, ErrFinished, Code(err))
	require.Equal(t, model.StatusSelesai, m.entries["ord-1-1"].Status)
}

func TestAdvance_Unknown(t *testing.T) {
	ctx := context.Background()
	svc := New(&mockRepo{entries: map[string]*model.RentalEntry{}})

	_, err := svc.Advance(ctx, "nope")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestStatusNext_NeverSkipsOrReverses(t *testing.T) {
	next, ok := model.StatusDiproses.Next()
	require.True(t, ok)
	require.Equal(t, model.StatusDikirim, next)

	next, ok = model.StatusDikirim.Next()
	require.True(t, ok)
	require.Equal(t, model.StatusSelesai, next)

	_, ok = model.StatusSelesai.Next()
	require.False(t, ok)
}
