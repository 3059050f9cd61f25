// repository/review/repo.go
package review

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

type Repo interface {
	ByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Append(ctx context.Context, rev model.Review) error
}

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func (r *repo) ByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	var all []model.Review
	if _, err := r.st.Get(store.KeyReviews, &all); err != nil {
		return nil, nil
	}
	var out []model.Review
	for _, rev := range all {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *repo) Append(ctx context.Context, rev model.Review) error {
	return r.st.Update(func(tx store.Tx) error {
		var all []model.Review
		if _, err := tx.Get(store.KeyReviews, &all); err != nil {
			all = nil
		}
		all = append(all, rev)
		return tx.Set(store.KeyReviews, all)
	})
}
