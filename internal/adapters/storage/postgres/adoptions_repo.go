package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

// AdoptionsRepo hace cada transición en una transacción, con la fila de la
// mascota bloqueada (FOR UPDATE) mientras dura.
type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const requestColumns = `id, pet_id, requester_email, name, phone, address, created_at`

func (r *AdoptionsRepo) Submit(ctx context.Context, req adoptions.Request, at time.Time) (string, error) {
	req.ID = newID()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		status, err := lockPetStatus(ctx, tx, req.PetID)
		if err != nil {
			return err
		}
		if status == pets.StatusAdopted {
			return adoptions.ErrPetAdopted
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO adoption_requests (`+requestColumns+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`, req.ID, req.PetID, req.RequesterEmail, req.Name, req.Phone, req.Address, req.CreatedAt); err != nil {
			return err
		}
		return setPetStatus(ctx, tx, req.PetID, pets.StatusRequested, at)
	})
	if err != nil {
		return "", err
	}
	return req.ID, nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM adoption_requests WHERE id = $1`, id)
	return scanRequest(row)
}

func (r *AdoptionsRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]adoptions.Request, error) {
	out := make([]adoptions.Request, 0)
	if len(petIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+requestColumns+`
		FROM adoption_requests
		WHERE pet_id = ANY($1)
		ORDER BY created_at ASC
	`, petIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) Accept(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	var out adoptions.Request
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		req, err := scanRequest(tx.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM adoption_requests WHERE id = $1`, id))
		if err != nil {
			return err
		}
		if _, err := lockPetStatus(ctx, tx, req.PetID); err != nil {
			return err
		}
		if err := setPetStatus(ctx, tx, req.PetID, pets.StatusAdopted, at); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM adoption_requests WHERE pet_id = $1`, req.PetID); err != nil {
			return err
		}
		out = req
		return nil
	})
	return out, err
}

func (r *AdoptionsRepo) Reject(ctx context.Context, id string, at time.Time) (adoptions.Request, error) {
	var out adoptions.Request
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		req, err := scanRequest(tx.QueryRowContext(ctx, `
			DELETE FROM adoption_requests WHERE id = $1
			RETURNING `+requestColumns, id))
		if err != nil {
			return err
		}
		if _, err := lockPetStatus(ctx, tx, req.PetID); err != nil {
			return err
		}
		if err := setPetStatus(ctx, tx, req.PetID, pets.StatusNotAdopted, at); err != nil {
			return err
		}
		out = req
		return nil
	})
	return out, err
}

func lockPetStatus(ctx context.Context, tx *sql.Tx, petID string) (pets.AdoptionStatus, error) {
	var raw string
	err := tx.QueryRowContext(ctx, `SELECT adoption_status FROM pets WHERE id = $1 FOR UPDATE`, petID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", adoptions.ErrPetNotFound
	}
	if err != nil {
		return "", err
	}
	status, _ := pets.ParseAdoptionStatus(raw)
	return status, nil
}

func scanRequest(s scanner) (adoptions.Request, error) {
	var req adoptions.Request
	if err := s.Scan(&req.ID, &req.PetID, &req.RequesterEmail, &req.Name, &req.Phone, &req.Address, &req.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Request{}, adoptions.ErrNotFound
		}
		return adoptions.Request{}, err
	}
	return req, nil
}
