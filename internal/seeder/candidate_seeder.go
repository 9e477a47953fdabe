package seeder

import (
	"context"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type CandidateSeeder struct{}

func (CandidateSeeder) Name() string { return "candidates" }

func (CandidateSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "candidates",
		"id", "full_name", "location", "years_of_experience",
	); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "candidate_skills",
		"id", "candidate_id", "skill_name", "level",
	); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "candidate_contract_prefs",
		"id", "candidate_id", "contract_type",
	); err != nil {
		return err
	}

	items := []struct {
		FullName      string
		Location      string
		Experience    int
		ContractPrefs []string
		Skills        []seedSkill
	}{
		{
			FullName:      "Amine Ben Salah",
			Location:      "Tunis",
			Experience:    4,
			ContractPrefs: []string{"cdi"},
			Skills: []seedSkill{
				{"Java", "advanced"},
				{"Spring", "intermediate"},
				{"SQL", "advanced"},
			},
		},
		{
			FullName:      "Syrine Trabelsi",
			Location:      "Sousse",
			Experience:    1,
			ContractPrefs: []string{"stage", "cdd"},
			Skills: []seedSkill{
				{"Python", "intermediate"},
				{"JavaScript", "beginner"},
			},
		},
		{
			FullName:      "Mehdi Gharbi",
			Location:      "Sfax",
			Experience:    6,
			ContractPrefs: []string{},
			Skills: []seedSkill{
				{"Docker", "advanced"},
				{"Kubernetes", "advanced"},
				{"Linux", "advanced"},
				{"Python", "beginner"},
			},
		},
	}

	for _, it := range items {
		if exists, err := candidateExistsByName(ctx, db, it.FullName); err != nil || exists {
			continue
		}

		id := uuid.New()
		_, err := db.Exec(ctx,
			`INSERT INTO candidates (id, full_name, location, years_of_experience) VALUES ($1,$2,$3,$4)`,
			id, it.FullName, it.Location, it.Experience,
		)
		if err != nil {
			return err
		}

		for _, s := range it.Skills {
			if _, err := db.Exec(ctx,
				`INSERT INTO candidate_skills (id, candidate_id, skill_name, level) VALUES ($1,$2,$3,$4)`,
				uuid.New(), id, s.Name, s.Level,
			); err != nil {
				return err
			}
		}
		for _, ct := range it.ContractPrefs {
			if _, err := db.Exec(ctx,
				`INSERT INTO candidate_contract_prefs (id, candidate_id, contract_type) VALUES ($1,$2,$3)
				 ON CONFLICT (candidate_id, contract_type) DO NOTHING`,
				uuid.New(), id, ct,
			); err != nil {
				return err
			}
		}
	}

	return nil
}

func candidateExistsByName(ctx context.Context, db database.DB, fullName string) (bool, error) {
	row := db.QueryRow(ctx, `SELECT id FROM candidates WHERE full_name = $1 LIMIT 1`, fullName)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return false, nil
	}
	return id != uuid.Nil, nil
}
