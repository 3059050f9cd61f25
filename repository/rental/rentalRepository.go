// repository/rental/repo.go
package rental

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	List(ctx context.Context) ([]model.RentalEntry, error)
	ByID(ctx context.Context, id string) (*model.RentalEntry, error)

	// Append adds the per-line entries of a freshly committed order.
	Append(ctx context.Context, tx store.Tx, entries []model.RentalEntry) error

	// UpdateStatus rewrites one entry's status as a single atomic RMW.
	UpdateStatus(ctx context.Context, id string, status model.RentalStatus) error
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func load(tx store.Tx) []model.RentalEntry {
	var entries []model.RentalEntry
	if _, err := tx.Get(store.KeyRentalHistory, &entries); err != nil {
		return nil
	}
	return entries
}

func (r *repo) List(ctx context.Context) ([]model.RentalEntry, error) {
	return load(r.st), nil
}

func (r *repo) ByID(ctx context.Context, id string) (*model.RentalEntry, error) {
	for _, e := range load(r.st) {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *repo) Append(ctx context.Context, tx store.Tx, entries []model.RentalEntry) error {
	have := load(tx)
	have = append(have, entries...)
	return tx.Set(store.KeyRentalHistory, have)
}

func (r *repo) UpdateStatus(ctx context.Context, id string, status model.RentalStatus) error {
	return r.st.Update(func(tx store.Tx) error {
		entries := load(tx)
		for i := range entries {
			if entries[i].ID == id {
				entries[i].Status = status
			}
		}
		return tx.Set(store.KeyRentalHistory, entries)
	})
}
