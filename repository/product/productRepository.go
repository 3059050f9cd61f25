// repository/product/repo.go
package product

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	List(ctx context.Context) ([]model.Product, error)
	Detail(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func load(tx store.Tx) []model.Product {
	var ps []model.Product
	if _, err := tx.Get(store.KeyProducts, &ps); err != nil {
		return nil
	}
	return ps
}

func (r *repo) List(ctx context.Context) ([]model.Product, error) {
	return load(r.st), nil
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Product, error) {
	for _, p := range load(r.st) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *repo) Create(ctx context.Context, p model.Product) (int64, error) {
	var id int64
	err := r.st.Update(func(tx store.Tx) error {
		ps := load(tx)
		id = 1
		for _, have := range ps {
			if have.ID >= id {
				id = have.ID + 1
			}
		}
		p.ID = id
		ps = append(ps, p)
		return tx.Set(store.KeyProducts, ps)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
