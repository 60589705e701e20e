package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, email, name, photo_url, role, status, created_at`

func (r *UsersRepo) CreateIfAbsent(ctx context.Context, u users.User) (users.User, bool, error) {
	u.ID = newID()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (email) DO NOTHING
	`, u.ID, u.Email, u.Name, u.PhotoURL, string(u.Role), u.Status, u.CreatedAt)
	if err != nil {
		return users.User{}, false, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return u, true, nil
	}

	existing, err := r.GetByEmail(ctx, u.Email)
	if err != nil {
		return users.User{}, false, err
	}
	return existing, false, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) SetStatus(ctx context.Context, email, status string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET status = $2 WHERE email = $1
		RETURNING `+userColumns, email, status)
	return scanUser(row)
}

func (r *UsersRepo) SetRole(ctx context.Context, email string, role users.Role) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE users SET role = $2 WHERE email = $1
		RETURNING `+userColumns, email, string(role))
	return scanUser(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var role string
	if err := s.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &role, &u.Status, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = users.Role(role)
	return u, nil
}
