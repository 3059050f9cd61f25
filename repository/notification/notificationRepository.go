// repository/notification/repo.go
//
// The original storefront kept two notification lists ("notifications" and
// "notifikasi") written from different screens. They are consolidated here
// into the single "notifications" key.
package notification

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	List(ctx context.Context) ([]model.Notification, error)
	Prepend(ctx context.Context, tx store.Tx, n model.Notification) error
	Clear(ctx context.Context) error
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func (r *repo) List(ctx context.Context) ([]model.Notification, error) {
	var ns []model.Notification
	if _, err := r.st.Get(store.KeyNotifications, &ns); err != nil {
		return nil, nil
	}
	return ns, nil
}

func (r *repo) Prepend(ctx context.Context, tx store.Tx, n model.Notification) error {
	var ns []model.Notification
	if _, err := tx.Get(store.KeyNotifications, &ns); err != nil {
		ns = nil
	}
	ns = append([]model.Notification{n}, ns...)
	return tx.Set(store.KeyNotifications, ns)
}

func (r *repo) Clear(ctx context.Context) error {
	return r.st.Remove(store.KeyNotifications)
}
