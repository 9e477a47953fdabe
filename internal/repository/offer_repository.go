package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrOfferNotFound = errors.New("offer not found")

type Offer struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Location           string
	Description        string
	ContractType       string
	MinExperienceYears int
	PostedAt           *time.Time
}

type OfferRepository interface {
	FindByID(ctx context.Context, offerID uuid.UUID) (Offer, error)
	ListOffers(ctx context.Context, limit, offset int) ([]Offer, error)
	ListTitles(ctx context.Context, limit int) ([]string, error)
}

type PostgresOfferRepository struct {
	db database.DB
}

func NewPostgresOfferRepository(db database.DB) *PostgresOfferRepository {
	return &PostgresOfferRepository{db: db}
}

const offerColumns = `id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(contract_type, 'unknown'), COALESCE(min_experience_years, 0), posted_at`

func (r *PostgresOfferRepository) FindByID(ctx context.Context, offerID uuid.UUID) (Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, offerID)

	var o Offer
	if err := row.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Description,
		&o.ContractType, &o.MinExperienceYears, &o.PostedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Offer{}, ErrOfferNotFound
		}
		return Offer{}, err
	}
	return o, nil
}

func (r *PostgresOfferRepository) ListOffers(ctx context.Context, limit, offset int) ([]Offer, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+offerColumns+`
		 FROM offers
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Offer, 0)
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Description,
			&o.ContractType, &o.MinExperienceYears, &o.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOfferRepository) ListTitles(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 200
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT title FROM offers WHERE title <> '' ORDER BY title LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
