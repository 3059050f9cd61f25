package order

import (
	"context"
	"errors"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

var ErrNoSnapshot = errors.New("no completed checkout")

type Repo interface {
	Snapshot(ctx context.Context) (*model.Order, error)
	History(ctx context.Context) ([]model.Order, error)
}

type Service interface {
	// History lists past orders, newest first.
	History(ctx context.Context) ([]model.Order, error)

	// Snapshot is the last completed order, backing the receipt view.
	Snapshot(ctx context.Context) (*model.Order, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) History(ctx context.Context) ([]model.Order, error) {
	return s.r.History(ctx)
}

func (s *service) Snapshot(ctx context.Context) (*model.Order, error) {
	o, err := s.r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNoSnapshot
	}
	return o, nil
}
