package repository

import (
	"context"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type OfferSkillRequirement struct {
	OfferID       uuid.UUID
	SkillName     string
	RequiredLevel string
}

type OfferSkillRepository interface {
	FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]OfferSkillRequirement, error)
	FindByOfferIDs(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]OfferSkillRequirement, error)
}

type PostgresOfferSkillRepository struct {
	db database.DB
}

func NewPostgresOfferSkillRepository(db database.DB) *PostgresOfferSkillRepository {
	return &PostgresOfferSkillRepository{db: db}
}

func (r *PostgresOfferSkillRepository) FindByOfferID(ctx context.Context, offerID uuid.UUID) ([]OfferSkillRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT offer_id, skill_name, COALESCE(required_level, 'beginner')
		 FROM offer_skills
		 WHERE offer_id = $1
		 ORDER BY created_at ASC`,
		offerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OfferSkillRequirement, 0)
	for rows.Next() {
		var req OfferSkillRequirement
		if err := rows.Scan(&req.OfferID, &req.SkillName, &req.RequiredLevel); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOfferSkillRepository) FindByOfferIDs(ctx context.Context, offerIDs []uuid.UUID) (map[uuid.UUID][]OfferSkillRequirement, error) {
	out := make(map[uuid.UUID][]OfferSkillRequirement, len(offerIDs))
	if len(offerIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT offer_id, skill_name, COALESCE(required_level, 'beginner')
		 FROM offer_skills
		 WHERE offer_id = ANY($1)
		 ORDER BY created_at ASC`,
		offerIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var req OfferSkillRequirement
		if err := rows.Scan(&req.OfferID, &req.SkillName, &req.RequiredLevel); err != nil {
			return nil, err
		}
		out[req.OfferID] = append(out[req.OfferID], req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
