package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"fmt"
	"math"
	"sort"
)

// Maturity classification labels. Thresholds are evaluated highest first.
const (
	MaturityAdvanced     = "Avançado"
	MaturityIntermediate = "Intermediário"
	MaturityBeginner     = "Iniciante"

	RiskLow      = "Baixo"
	RiskModerate = "Moderado"
	RiskCritical = "Crítico"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeScoreAwarded snapshots an option's score value at answer time.
// A nil option scores 0; history is never recomputed from live options.
func ComputeScoreAwarded(option *model.QuestionOption) int {
	if option == nil {
		return 0
	}
	return option.ScoreValue
}

// ComputeGlobalScore averages score_awarded over the answer set, rounded
// to 2 decimal places. An empty set is a domain error, not a zero score.
func ComputeGlobalScore(answers []repository.ScoredAnswer) (float64, error) {
	if len(answers) == 0 {
		return 0, util.ErrNoAnswers
	}

	total := 0
	for _, a := range answers {
		total += a.ScoreAwarded
	}

	return round2(float64(total) / float64(len(answers))), nil
}

// ComputeAxisScores groups answers by the owning section of each question
// and averages per group. Sections with no answers produce no entry.
func ComputeAxisScores(answers []repository.ScoredAnswer) []model.AxisScore {
	type bucket struct {
		title string
		sum   int
		count int
	}
	buckets := make(map[uint]*bucket)

	for _, a := range answers {
		b, ok := buckets[a.SectionID]
		if !ok {
			b = &bucket{title: a.SectionTitle}
			buckets[a.SectionID] = b
		}
		b.sum += a.ScoreAwarded
		b.count++
	}

	axes := make([]model.AxisScore, 0, len(buckets))
	for sectionID, b := range buckets {
		title := b.title
		if title == "" {
			title = fmt.Sprintf("Eixo %d", sectionID)
		}
		axes = append(axes, model.AxisScore{
			SectionID: sectionID,
			Title:     title,
			Score:     round2(float64(b.sum) / float64(b.count)),
		})
	}

	sort.Slice(axes, func(i, j int) bool { return axes[i].SectionID < axes[j].SectionID })
	return axes
}

// ClassifyMaturity maps a global score to a maturity level and risk
// label. Total over the reals; thresholds checked highest first.
func ClassifyMaturity(globalScore float64) (level, risk string) {
	switch {
	case globalScore >= 70:
		return MaturityAdvanced, RiskLow
	case globalScore >= 40:
		return MaturityIntermediate, RiskModerate
	default:
		return MaturityBeginner, RiskCritical
	}
}

// NormalizeToPercentage is the single point of truth for how the stored
// calculated_score is reported to callers. The divisor comes from
// configuration; 1 keeps the historical identity-round behavior.
func NormalizeToPercentage(rawScore float64, divisor float64) int {
	if divisor <= 0 {
		divisor = 1
	}
	return int(math.Round(rawScore / divisor))
}
