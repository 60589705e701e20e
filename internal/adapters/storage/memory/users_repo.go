package memory

import (
	"context"
	"sort"

	"pet-adoption/internal/domain/users"
)

type userRepo struct{ s *Store }

func (r *userRepo) CreateIfAbsent(ctx context.Context, u users.User) (users.User, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.users[u.Email]; ok {
		return existing, false, nil
	}
	u.ID = r.s.newID()
	r.s.users[u.Email] = u
	return u, true, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *userRepo) SetStatus(ctx context.Context, email, status string) (users.User, error) {
	return r.update(email, func(u *users.User) { u.Status = status })
}

func (r *userRepo) SetRole(ctx context.Context, email string, role users.Role) (users.User, error) {
	return r.update(email, func(u *users.User) { u.Role = role })
}

func (r *userRepo) update(email string, fn func(*users.User)) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	fn(&u)
	r.s.users[email] = u
	return u, nil
}
