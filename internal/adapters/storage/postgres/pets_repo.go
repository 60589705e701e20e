package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_email,
	name, age, category, location, image_url,
	short_description, long_description,
	adoption_status, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	p.ID = newID()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.OwnerEmail,
		p.Name,
		p.Age,
		p.Category,
		p.Location,
		p.ImageURL,
		p.ShortDescription,
		p.LongDescription,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update sólo toca campos descriptivos; owner y estado quedan como están.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			age = $3,
			category = $4,
			location = $5,
			image_url = $6,
			short_description = $7,
			long_description = $8,
			updated_at = $9
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Category,
		p.Location,
		p.ImageURL,
		p.ShortDescription,
		p.LongDescription,
		p.UpdatedAt,
	)
	return expectOne(res, err, pets.ErrNotFound)
}

func (r *PetsRepo) SetStatus(ctx context.Context, id string, status pets.AdoptionStatus, at time.Time) error {
	return setPetStatus(ctx, r.db, id, status, at)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return expectOne(res, err, pets.ErrNotFound)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE ($1 = '' OR owner_email = $1)
		  AND ($2 = '' OR adoption_status = $2)
		ORDER BY created_at ASC
	`, f.OwnerEmail, string(f.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// execer lo cumplen *sql.DB y *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setPetStatus(ctx context.Context, db execer, id string, status pets.AdoptionStatus, at time.Time) error {
	res, err := db.ExecContext(ctx, `
		UPDATE pets SET adoption_status = $2, updated_at = $3 WHERE id = $1
	`, id, string(status), at)
	return expectOne(res, err, pets.ErrNotFound)
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var status string
	if err := s.Scan(
		&p.ID,
		&p.OwnerEmail,
		&p.Name,
		&p.Age,
		&p.Category,
		&p.Location,
		&p.ImageURL,
		&p.ShortDescription,
		&p.LongDescription,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Status, _ = pets.ParseAdoptionStatus(status)
	return p, nil
}

func expectOne(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFound
	}
	return nil
}
