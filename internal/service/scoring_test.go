package service

import (
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeScoreAwarded(t *testing.T) {
	assert.Equal(t, 0, ComputeScoreAwarded(nil))
	assert.Equal(t, 75, ComputeScoreAwarded(&model.QuestionOption{ScoreValue: 75}))
	assert.Equal(t, 0, ComputeScoreAwarded(&model.QuestionOption{ScoreValue: 0}))
}

func TestComputeGlobalScore(t *testing.T) {
	answers := []repository.ScoredAnswer{
		{QuestionID: 1, ScoreAwarded: 80},
		{QuestionID: 2, ScoreAwarded: 60},
		{QuestionID: 3, ScoreAwarded: 40},
	}

	score, err := ComputeGlobalScore(answers)
	require.NoError(t, err)
	assert.Equal(t, 60.0, score)
}

func TestComputeGlobalScoreRoundsToTwoDecimals(t *testing.T) {
	answers := []repository.ScoredAnswer{
		{ScoreAwarded: 33},
		{ScoreAwarded: 33},
		{ScoreAwarded: 34},
	}

	score, err := ComputeGlobalScore(answers)
	require.NoError(t, err)
	assert.Equal(t, 33.33, score)
}

func TestComputeGlobalScoreEmptyIsError(t *testing.T) {
	_, err := ComputeGlobalScore(nil)
	assert.ErrorIs(t, err, util.ErrNoAnswers)

	_, err = ComputeGlobalScore([]repository.ScoredAnswer{})
	assert.ErrorIs(t, err, util.ErrNoAnswers)
}

func TestComputeAxisScores(t *testing.T) {
	answers := []repository.ScoredAnswer{
		{QuestionID: 1, ScoreAwarded: 80, SectionID: 1, SectionTitle: "Governança e Estratégia"},
		{QuestionID: 2, ScoreAwarded: 60, SectionID: 1, SectionTitle: "Governança e Estratégia"},
		{QuestionID: 3, ScoreAwarded: 40, SectionID: 2, SectionTitle: "Dados e Infraestrutura"},
	}

	axes := ComputeAxisScores(answers)
	require.Len(t, axes, 2)

	assert.Equal(t, uint(1), axes[0].SectionID)
	assert.Equal(t, "Governança e Estratégia", axes[0].Title)
	assert.Equal(t, 70.0, axes[0].Score)

	assert.Equal(t, uint(2), axes[1].SectionID)
	assert.Equal(t, 40.0, axes[1].Score)
}

func TestComputeAxisScoresFallbackTitle(t *testing.T) {
	answers := []repository.ScoredAnswer{
		{QuestionID: 9, ScoreAwarded: 50, SectionID: 7, SectionTitle: ""},
	}

	axes := ComputeAxisScores(answers)
	require.Len(t, axes, 1)
	assert.Equal(t, "Eixo 7", axes[0].Title)
}

func TestComputeAxisScoresSortedBySection(t *testing.T) {
	answers := []repository.ScoredAnswer{
		{ScoreAwarded: 10, SectionID: 3, SectionTitle: "C"},
		{ScoreAwarded: 20, SectionID: 1, SectionTitle: "A"},
		{ScoreAwarded: 30, SectionID: 2, SectionTitle: "B"},
	}

	axes := ComputeAxisScores(answers)
	require.Len(t, axes, 3)
	assert.Equal(t, uint(1), axes[0].SectionID)
	assert.Equal(t, uint(2), axes[1].SectionID)
	assert.Equal(t, uint(3), axes[2].SectionID)
}

func TestClassifyMaturity(t *testing.T) {
	cases := []struct {
		score float64
		level string
		risk  string
	}{
		{100, MaturityAdvanced, RiskLow},
		{70, MaturityAdvanced, RiskLow},
		{69.99, MaturityIntermediate, RiskModerate},
		{40, MaturityIntermediate, RiskModerate},
		{39.99, MaturityBeginner, RiskCritical},
		{0, MaturityBeginner, RiskCritical},
	}

	for _, tc := range cases {
		level, risk := ClassifyMaturity(tc.score)
		assert.Equal(t, tc.level, level, "score %.2f", tc.score)
		assert.Equal(t, tc.risk, risk, "score %.2f", tc.score)
	}
}

func TestNormalizeToPercentage(t *testing.T) {
	assert.Equal(t, 60, NormalizeToPercentage(60.4, 1))
	assert.Equal(t, 61, NormalizeToPercentage(60.5, 1))
	assert.Equal(t, 50, NormalizeToPercentage(100, 2))

	// Non-positive divisors fall back to identity.
	assert.Equal(t, 60, NormalizeToPercentage(60, 0))
	assert.Equal(t, 60, NormalizeToPercentage(60, -3))
}
