// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/util/hash"
	jwtutil "github.com/PKL-SST-2025/camp-rent-sub000/util/jwt"
)

type mockRepo struct {
	users   map[string]*model.User
	current *model.CurrentUser
	token   *model.ResetToken

	byEmailErr error
	createErr  error
}

var _ Repo = (*mockRepo)(nil)

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]*model.User{}}
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailErr != nil {
		return nil, m.byEmailErr
	}
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *mockRepo) Create(ctx context.Context, u model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.Email] = &u
	return nil
}

func (m *mockRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if u, ok := m.users[email]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (m *mockRepo) Current(ctx context.Context) (*model.CurrentUser, error) { return m.current, nil }

func (m *mockRepo) SetCurrent(ctx context.Context, cu model.CurrentUser) error {
	m.current = &cu
	return nil
}

func (m *mockRepo) ClearCurrent(ctx context.Context) error {
	m.current = nil
	return nil
}

func (m *mockRepo) ResetToken(ctx context.Context) (*model.ResetToken, error) {
	if m.token == nil {
		return nil, nil
	}
	cp := *m.token
	return &cp, nil
}

func (m *mockRepo) SaveResetToken(ctx context.Context, t model.ResetToken) error {
	m.token = &t
	return nil
}

func (m *mockRepo) RemoveResetToken(ctx context.Context) error {
	m.token = nil
	return nil
}

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

var now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

const secret = "test-secret"

func newSvc(m *mockRepo) (Service, *fakeClock) {
	clk := &fakeClock{t: now}
	return New(m, secret, &seqIDGen{}, clk), clk
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

func seedUser(t *testing.T, m *mockRepo, email, password string) {
	t.Helper()
	m.users[email] = &model.User{
		ID:           "u-1",
		Name:         "Budi",
		Email:        email,
		PasswordHash: mustHash(t, password),
	}
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	svc, _ := newSvc(m)

	u, tok, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Budi",
		Email:    "  BUDI@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "budi@example.com", u.Email)
	require.NotEmpty(t, u.ID)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "supersecret", u.PasswordHash)

	claims, err := jwtutil.Parse(tok, secret)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims["sub"])
	require.Equal(t, "Budi", claims["name"])
}

func TestRegister_BadInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(newMockRepo())

	_, _, err := svc.Register(ctx, model.RegisterReq{Name: "Budi", Email: "b@x.co", Password: "123"})
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "oldpass")
	svc, _ := newSvc(m)

	_, _, err := svc.Register(ctx, model.RegisterReq{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "supersecret")
	svc, _ := newSvc(m)

	u, tok, err := svc.Login(ctx, model.LoginReq{Email: "budi@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Equal(t, "u-1", u.ID)

	cu, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cu)
	require.Equal(t, "budi@example.com", cu.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "supersecret")
	svc, _ := newSvc(m)

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "budi@example.com", Password: "wrong"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
	require.Nil(t, m.current)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(newMockRepo())

	_, _, err := svc.Login(ctx, model.LoginReq{Email: "ghost@example.com", Password: "supersecret"})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	m.current = &model.CurrentUser{ID: "u-1"}
	svc, _ := newSvc(m)

	require.NoError(t, svc.Logout(ctx))
	require.Nil(t, m.current)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(newMockRepo())

	_, err := svc.RequestReset(ctx, "ghost@example.com")
	require.Error(t, err)
	require.Equal(t, ErrNoUser, Code(err))
}

func TestResetPassword_HappyPath(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "oldpass")
	svc, _ := newSvc(m)

	tok, err := svc.RequestReset(ctx, "budi@example.com")
	require.NoError(t, err)
	require.Equal(t, now.Add(30*time.Minute), tok.ExpiresAt)

	require.NoError(t, svc.ResetPassword(ctx, tok.Token, "newsecret"))

	// new password works, old one does not
	_, _, err = svc.Login(ctx, model.LoginReq{Email: "budi@example.com", Password: "newsecret"})
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, model.LoginReq{Email: "budi@example.com", Password: "oldpass"})
	require.Error(t, err)
}

func TestResetPassword_WrongToken(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "oldpass")
	svc, _ := newSvc(m)

	_, err := svc.RequestReset(ctx, "budi@example.com")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, "not-the-token", "newsecret")
	require.Error(t, err)
	require.Equal(t, ErrBadToken, Code(err))
}

func TestResetPassword_Expired(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "oldpass")
	svc, clk := newSvc(m)

	tok, err := svc.RequestReset(ctx, "budi@example.com")
	require.NoError(t, err)

	clk.t = now.Add(31 * time.Minute)
	err = svc.ResetPassword(ctx, tok.Token, "newsecret")
	require.Error(t, err)
	require.Equal(t, ErrTokenExpired, Code(err))
}

func TestResetPassword_SingleUse(t *testing.T) {
	ctx := context.Background()
	m := newMockRepo()
	seedUser(t, m, "budi@example.com", "oldpass")
	svc, _ := newSvc(m)

	tok, err := svc.RequestReset(ctx, "budi@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, tok.Token, "newsecret"))

	err = svc.ResetPassword(ctx, tok.Token, "anothersecret")
	require.Error(t, err)
	require.Equal(t, ErrTokenUsed, Code(err))
}

func TestResetPassword_ShortPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSvc(newMockRepo())

	err := svc.ResetPassword(ctx, "whatever", "123")
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}
