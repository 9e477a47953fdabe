package seeder

import (
	"context"
	"time"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type OfferSeeder struct{}

func (OfferSeeder) Name() string { return "offers" }

type seedSkill struct {
	Name  string
	Level string
}

func (OfferSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "offers",
		"id", "title", "company", "location", "description",
		"contract_type", "min_experience_years", "posted_at",
	); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "offer_skills",
		"id", "offer_id", "skill_name", "required_level",
	); err != nil {
		return err
	}

	now := time.Now().UTC()

	items := []struct {
		Title         string
		Company       string
		Location      string
		ContractType  string
		MinExperience int
		Description   string
		Skills        []seedSkill
	}{
		{
			Title:         "Développeur Backend Java",
			Company:       "Vermeg",
			Location:      "Tunis",
			ContractType:  "cdi",
			MinExperience: 3,
			Description:   "Conception et développement de services backend Java et Spring.",
			Skills: []seedSkill{
				{"Java", "advanced"},
				{"Spring", "intermediate"},
				{"SQL", "intermediate"},
			},
		},
		{
			Title:         "Développeur Python",
			Company:       "InstaDeep",
			Location:      "Tunis",
			ContractType:  "cdi",
			MinExperience: 2,
			Description:   "Développement de pipelines de données et d'APIs en Python.",
			Skills: []seedSkill{
				{"Python", "advanced"},
				{"SQL", "beginner"},
			},
		},
		{
			Title:         "Ingénieur DevOps",
			Company:       "Telnet",
			Location:      "Sfax",
			ContractType:  "cdi",
			MinExperience: 4,
			Description:   "Mise en place de CI/CD, Docker, Kubernetes et supervision.",
			Skills: []seedSkill{
				{"Docker", "advanced"},
				{"Kubernetes", "intermediate"},
				{"Linux", "advanced"},
			},
		},
		{
			Title:         "Stage Développement Web",
			Company:       "Proxym",
			Location:      "Sousse",
			ContractType:  "stage",
			MinExperience: 0,
			Description:   "Stage de fin d'études en développement web fullstack.",
			Skills: []seedSkill{
				{"JavaScript", "beginner"},
				{"HTML", "beginner"},
			},
		},
		{
			Title:         "Data Scientist",
			Company:       "Expensya",
			Location:      "Tunis",
			ContractType:  "cdd",
			MinExperience: 2,
			Description:   "Analyse de données, modèles prédictifs et reporting.",
			Skills: []seedSkill{
				{"Python", "intermediate"},
				{"Machine Learning", "intermediate"},
				{"SQL", "intermediate"},
			},
		},
	}

	for _, it := range items {
		if exists, err := offerExistsByTitle(ctx, db, it.Title); err != nil || exists {
			continue
		}

		id := uuid.New()
		_, err := db.Exec(ctx,
			`INSERT INTO offers (id, title, company, location, description, contract_type, min_experience_years, posted_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			id, it.Title, it.Company, it.Location, it.Description, it.ContractType, it.MinExperience, now,
		)
		if err != nil {
			return err
		}

		for _, s := range it.Skills {
			if _, err := db.Exec(ctx,
				`INSERT INTO offer_skills (id, offer_id, skill_name, required_level) VALUES ($1,$2,$3,$4)`,
				uuid.New(), id, s.Name, s.Level,
			); err != nil {
				return err
			}
		}
	}

	return nil
}

func offerExistsByTitle(ctx context.Context, db database.DB, title string) (bool, error) {
	row := db.QueryRow(ctx, `SELECT id FROM offers WHERE title = $1 LIMIT 1`, title)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return false, nil
	}
	return id != uuid.Nil, nil
}
