package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateSkill struct {
	SkillName string
	Level     string
}

type CandidateProfile struct {
	ID                     uuid.UUID
	FullName               string
	Location               string
	YearsOfExperience      int
	Skills                 []CandidateSkill
	PreferredContractTypes []string
}

type CandidateRepository interface {
	FindProfileByID(ctx context.Context, candidateID uuid.UUID) (CandidateProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) FindProfileByID(ctx context.Context, candidateID uuid.UUID) (CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(full_name, ''), COALESCE(location, ''), COALESCE(years_of_experience, 0)
		 FROM candidates WHERE id = $1`,
		candidateID,
	)

	var p CandidateProfile
	if err := row.Scan(&p.ID, &p.FullName, &p.Location, &p.YearsOfExperience); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return CandidateProfile{}, ErrCandidateNotFound
		}
		return CandidateProfile{}, err
	}

	skills, err := r.findSkills(ctx, candidateID)
	if err != nil {
		return CandidateProfile{}, err
	}
	p.Skills = skills

	prefs, err := r.findContractPrefs(ctx, candidateID)
	if err != nil {
		return CandidateProfile{}, err
	}
	p.PreferredContractTypes = prefs

	return p, nil
}

// Rows come back in insertion order so that duplicate skill names resolve
// to the most recent entry downstream.
func (r *PostgresCandidateRepository) findSkills(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_name, COALESCE(level, 'beginner')
		 FROM candidate_skills
		 WHERE candidate_id = $1
		 ORDER BY created_at ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateSkill, 0)
	for rows.Next() {
		var s CandidateSkill
		if err := rows.Scan(&s.SkillName, &s.Level); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) findContractPrefs(ctx context.Context, candidateID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT contract_type FROM candidate_contract_prefs WHERE candidate_id = $1 ORDER BY contract_type`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var ct string
		if err := rows.Scan(&ct); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
