package main

import (
	"context"
	"log"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/seeder"
)

// Loads the demo dataset: a handful of offers and candidates so search,
// suggestions and matching have something to chew on out of the box.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seeder.RunAll(ctx, c.DB, c.Logger,
		seeder.OfferSeeder{},
		seeder.CandidateSeeder{},
	); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding done")
}
