package rental

import (
	"context"
	"errors"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrFinished ErrCode = "FINISHED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	List(ctx context.Context) ([]model.RentalEntry, error)
	ByID(ctx context.Context, id string) (*model.RentalEntry, error)
	UpdateStatus(ctx context.Context, id string, status model.RentalStatus) error
}

type Service interface {
	History(ctx context.Context) ([]model.RentalEntry, error)

	// Track looks an entry up by its route id.
	Track(ctx context.Context, id string) (*model.RentalEntry, error)

	// Advance moves the entry exactly one step along
	// Diproses → Dikirim → Selesai. Selesai is terminal.
	Advance(ctx context.Context, id string) (*model.RentalEntry, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) History(ctx context.Context) ([]model.RentalEntry, error) {
	return s.r.List(ctx)
}

func (s *service) Track(ctx context.Context, id string) (*model.RentalEntry, error) {
	e, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, makeErr(ErrNotFound)
	}
	return e, nil
}

func (s *service) Advance(ctx context.Context, id string) (*model.RentalEntry, error) {
	e, err := s.r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, makeErr(ErrNotFound)
	}
	next, ok := e.Status.Next()
	if !ok {
		return nil, makeErr(ErrFinished)
	}
	if err := s.r.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	e.Status = next
	return e, nil
}
