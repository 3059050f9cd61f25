package notification

import (
	"context"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

type Repo interface {
	List(ctx context.Context) ([]model.Notification, error)
	Clear(ctx context.Context) error
}

type Service interface {
	List(ctx context.Context) ([]model.Notification, error)

	// Clear wipes the whole list; single-item dismissal does not exist.
	Clear(ctx context.Context) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Notification, error) { return s.r.List(ctx) }
func (s *service) Clear(ctx context.Context) error                        { return s.r.Clear(ctx) }
