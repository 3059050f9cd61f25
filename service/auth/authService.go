package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/util/hash"
	jwtutil "github.com/PKL-SST-2025/camp-rent-sub000/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDS"
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrNoUser       ErrCode = "NO_USER"
	ErrBadToken     ErrCode = "BAD_TOKEN"
	ErrTokenExpired ErrCode = "TOKEN_EXPIRED"
	ErrTokenUsed    ErrCode = "TOKEN_USED"
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

// reset tokens are valid for 30 minutes and redeemable once
const resetTTL = 30 * time.Minute

type Repo interface {
	ByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u model.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	Current(ctx context.Context) (*model.CurrentUser, error)
	SetCurrent(ctx context.Context, cu model.CurrentUser) error
	ClearCurrent(ctx context.Context) error

	ResetToken(ctx context.Context) (*model.ResetToken, error)
	SaveResetToken(ctx context.Context, t model.ResetToken) error
	RemoveResetToken(ctx context.Context) error
}

type IDGen interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*model.CurrentUser, error)

	// RequestReset issues a fresh reset token for the account.
	RequestReset(ctx context.Context, email string) (*model.ResetToken, error)

	// ResetPassword redeems the token: it must match, be inside its
	// 30-minute window, and not have been used before.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type service struct {
	r      Repo
	secret string
	id     IDGen
	clock  Clock
}

func New(r Repo, secret string, id IDGen, clock Clock) Service {
	return &service{r: r, secret: secret, id: id, clock: clock}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || len(req.Password) < 6 {
		return nil, "", makeErr(ErrBadInput)
	}

	existing, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", makeErr(ErrEmailTaken)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}
	u := model.User{
		ID:           s.id.NewID(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.r.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Name, 24)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	u, err := s.r.ByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", makeErr(ErrInvalidCreds)
	}

	token, err := jwtutil.Issue(s.secret, u.ID, u.Name, 24)
	if err != nil {
		return nil, "", err
	}
	if err := s.r.SetCurrent(ctx, model.CurrentUser{ID: u.ID, Name: u.Name, Email: u.Email}); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.r.ClearCurrent(ctx)
}

func (s *service) Current(ctx context.Context) (*model.CurrentUser, error) {
	return s.r.Current(ctx)
}

func (s *service) RequestReset(ctx context.Context, email string) (*model.ResetToken, error) {
	u, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrNoUser)
	}
	now := s.clock.Now().UTC()
	t := model.ResetToken{
		Email:     u.Email,
		Token:     s.id.NewID(),
		Timestamp: now,
		ExpiresAt: now.Add(resetTTL),
	}
	if err := s.r.SaveResetToken(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 6 {
		return makeErr(ErrBadInput)
	}
	t, err := s.r.ResetToken(ctx)
	if err != nil {
		return err
	}
	if t == nil || t.Token != token {
		return makeErr(ErrBadToken)
	}
	if t.Used {
		return makeErr(ErrTokenUsed)
	}
	if s.clock.Now().After(t.ExpiresAt) {
		return makeErr(ErrTokenExpired)
	}

	hashed, err := hash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.r.UpdatePassword(ctx, t.Email, hashed); err != nil {
		return err
	}
	t.Used = true
	return s.r.SaveResetToken(ctx, *t)
}
