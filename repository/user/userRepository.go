// repository/user/repo.go
package user

import (
	"context"
	"strings"

	"github.com/PKL-SST-2025/camp-rent-sub000/model"
	"github.com/PKL-SST-2025/camp-rent-sub000/store"
)

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

type repo struct {
	st store.Store
}

func New(st store.Store) Repo { return &repo{st: st} }

func loadUsers(tx store.Tx) []model.User {
	var users []model.User
	if _, err := tx.Get(store.KeyUsers, &users); err != nil {
		return nil
	}
	return users
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range loadUsers(r.st) {
		if strings.ToLower(u.Email) == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *repo) Create(ctx context.Context, u model.User) error {
	return r.st.Update(func(tx store.Tx) error {
		users := loadUsers(tx)
		users = append(users, u)
		return tx.Set(store.KeyUsers, users)
	})
}

func (r *repo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.st.Update(func(tx store.Tx) error {
		users := loadUsers(tx)
		for i := range users {
			if strings.ToLower(users[i].Email) == email {
				users[i].PasswordHash = passwordHash
			}
		}
		return tx.Set(store.KeyUsers, users)
	})
}

func (r *repo) Current(ctx context.Context) (*model.CurrentUser, error) {
	var cu model.CurrentUser
	found, err := r.st.Get(store.KeyCurrentUser, &cu)
	if err != nil || !found {
		return nil, nil
	}
	return &cu, nil
}

func (r *repo) SetCurrent(ctx context.Context, cu model.CurrentUser) error {
	return r.st.Set(store.KeyCurrentUser, cu)
}

func (r *repo) ClearCurrent(ctx context.Context) error {
	return r.st.Remove(store.KeyCurrentUser)
}

func (r *repo) ResetToken(ctx context.Context) (*model.ResetToken, error) {
	var t model.ResetToken
	found, err := r.st.Get(store.KeyResetToken, &t)
	if err != nil || !found {
		return nil, nil
	}
	return &t, nil
}

func (r *repo) SaveResetToken(ctx context.Context, t model.ResetToken) error {
	return r.st.Set(store.KeyResetToken, t)
}

func (r *repo) RemoveResetToken(ctx context.Context) error {
	return r.st.Remove(store.KeyResetToken)
}
