// service/product/product_service_test.go
package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	productrepo "github.com/PKL-SST-2025/camp-rent-sub000/repository/product"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

func newSvc() Service {
	return New(productrepo.New(store.NewMemory()))
}

func TestSeed_FillsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	svc := newSvc()

	require.NoError(t, svc.Seed(ctx))

	ps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 6)
	require.Equal(t, int64(1), ps[0].ID)
	require.Equal(t, "Tenda Dome 4P", ps[0].Name)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newSvc()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	ps, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 6)
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	svc := newSvc()
	require.NoError(t, svc.Seed(ctx))

	p, err := svc.Detail(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "Kompor Portable", p.Name)

	_, err = svc.Detail(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_AssignsNextID(t *testing.T) {
	ctx := context.Background()
	svc := newSvc()
	require.NoError(t, svc.Seed(ctx))

	id, err := svc.Create(ctx, model.Product{Name: "Flysheet 3x4", Category: "tenda", Price: 12000})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
}

func TestCreate_RejectsBadPayload(t *testing.T) {
	ctx := context.Background()
	svc := newSvc()

	_, err := svc.Create(ctx, model.Product{Name: "", Category: "tenda", Price: 1})
	require.Error(t, err)

	_, err = svc.Create(ctx, model.Product{Name: "X", Category: "tenda", Price: -1})
	require.Error(t, err)
}
