package review

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadRating   ErrCode = "BAD_RATING"
	ErrBadComment  ErrCode = "BAD_COMMENT"
	ErrNotEligible ErrCode = "NOT_ELIGIBLE"
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
	ByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Append(ctx context.Context, rev model.Review) error
}

// EligibilityRepo answers whether the product has a completed paid rental;
// only rented products may be reviewed.
type EligibilityRepo interface {
	HasRented(ctx context.Context, productID int64) (bool, error)
}

type Clock interface {
	Now() time.Time
}

type Service interface {
	Submit(ctx context.Context, user string, productID int64, rating int, comment string) (*model.Review, error)

	// List filters by rating (0 = all) and sorts by date;
	// order is "newest" (default) or "oldest".
	List(ctx context.Context, productID int64, rating int, order string) ([]model.Review, error)

	// Stats recomputes aggregates over the product's reviews on every read.
	Stats(ctx context.Context, productID int64) (model.ReviewStats, error)
}

type service struct {
	r     Repo
	elig  EligibilityRepo
	clock Clock
}

func New(r Repo, elig EligibilityRepo, clock Clock) Service {
	return &service{r: r, elig: elig, clock: clock}
}

func (s *service) Submit(ctx context.Context, user string, productID int64, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, makeErr(ErrBadRating)
	}
	if strings.TrimSpace(comment) == "" {
		return nil, makeErr(ErrBadComment)
	}
	ok, err := s.elig.HasRented(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotEligible)
	}
	if user == "" {
		user = "Anonymous"
	}
	rev := model.Review{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		Date:      s.clock.Now().UTC(),
		User:      user,
	}
	if err := s.r.Append(ctx, rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

func (s *service) List(ctx context.Context, productID int64, rating int, order string) ([]model.Review, error) {
	revs, err := s.r.ByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if rating > 0 {
		kept := revs[:0]
		for _, rv := range revs {
			if rv.Rating == rating {
				kept = append(kept, rv)
			}
		}
		revs = kept
	}
	sort.SliceStable(revs, func(i, j int) bool {
		if order == "oldest" {
			return revs[i].Date.Before(revs[j].Date)
		}
		return revs[i].Date.After(revs[j].Date)
	})
	return revs, nil
}

func (s *service) Stats(ctx context.Context, productID int64) (model.ReviewStats, error) {
	revs, err := s.r.ByProduct(ctx, productID)
	if err != nil {
		return model.ReviewStats{}, err
	}
	return ComputeStats(revs), nil
}

// ComputeStats is a pure function over a review list: arithmetic mean,
// count, and a 5-bucket rating histogram.
func ComputeStats(revs []model.Review) model.ReviewStats {
	var st model.ReviewStats
	if len(revs) == 0 {
		return st
	}
	var sum int
	for _, rv := range revs {
		sum += rv.Rating
		if rv.Rating >= 1 && rv.Rating <= 5 {
			st.Buckets[rv.Rating-1]++
		}
	}
	st.Count = len(revs)
	st.Average = float64(sum) / float64(len(revs))
	return st
}
