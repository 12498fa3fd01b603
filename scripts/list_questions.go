// Dumps the seeded questionnaire to stdout for a quick sanity check
// after migrations or catalog edits.
//
// Usage: go run scripts/list_questions.go

package main

import (
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/pkg/database"
	"fmt"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewQuestionRepository(db)
	questions, err := repo.ListQuestions()
	if err != nil {
		log.Fatalf("Failed to list questions: %v", err)
	}

	for _, q := range questions {
		section := "-"
		if q.Section != nil {
			section = q.Section.Title
		}
		fmt.Printf("[%d] (%s) %s\n", q.OrderIndex, section, q.Text)
		for _, opt := range q.Options {
			fmt.Printf("    %3d  %s\n", opt.ScoreValue, opt.Text)
		}
	}
	fmt.Printf("\n%d questions\n", len(questions))
}
