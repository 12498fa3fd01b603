package service

import (
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"ai_maturity_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccessChecker is the injected capability for company-scoped
// authorization: can this user touch this company's data?
type AccessChecker interface {
	HasAccess(userID, companyID string) (bool, error)
}

const questionCatalogCacheKey = "assessment:questions"

type AssessmentService struct {
	Repo      *repository.AssessmentRepository
	Questions *repository.QuestionRepository
	Apps      *repository.ApplicationRepository
	Access    AccessChecker
	DB        *gorm.DB
	Redis     *redis.Client
	Scoring   config.ScoringConfig
}

func NewAssessmentService(
	repo *repository.AssessmentRepository,
	questions *repository.QuestionRepository,
	apps *repository.ApplicationRepository,
	access AccessChecker,
	db *gorm.DB,
	rdb *redis.Client,
	scoring config.ScoringConfig,
) *AssessmentService {
	return &AssessmentService{
		Repo:      repo,
		Questions: questions,
		Apps:      apps,
		Access:    access,
		DB:        db,
		Redis:     rdb,
		Scoring:   scoring,
	}
}

// ListQuestions returns the full catalog ordered by order_index, with
// options and sections. Served from Redis when warm; the catalog only
// changes on redeploys so a short TTL is enough.
func (s *AssessmentService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, questionCatalogCacheKey).Bytes()
		if err == nil {
			var qs []model.Question
			if json.Unmarshal(cached, &qs) == nil {
				return qs, nil
			}
		}
	}

	qs, err := s.Questions.ListQuestions()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(qs); err == nil {
			ttl := time.Duration(s.Scoring.CatalogCacheTTL) * time.Second
			if err := s.Redis.Set(ctx, questionCatalogCacheKey, payload, ttl).Err(); err != nil {
				logger.Log.Warn("question catalog cache write failed", zap.Error(err))
			}
		}
	}

	return qs, nil
}

// Init creates an assessment for the application, or resumes the one
// already in progress. The resume path has no side effects, so at most
// one IN_PROGRESS assessment exists per application.
// The second return value is true when a new assessment was created.
func (s *AssessmentService) Init(userID, applicationID string) (*model.Assessment, bool, error) {
	if applicationID == "" {
		return nil, false, fmt.Errorf("%w: missing application_id", util.ErrValidation)
	}

	app, err := s.Apps.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, util.ErrApplicationMissing
		}
		return nil, false, err
	}

	ok, err := s.Access.HasAccess(userID, app.CompanyID)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, util.ErrNotAuthorized
	}

	existing, err := s.Repo.FindInProgressByApplication(applicationID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	assessment := &model.Assessment{
		ApplicationID: applicationID,
		Status:        model.AssessmentInProgress,
		StartedAt:     time.Now(),
	}

	if tpl, err := s.Questions.FindActiveTemplate(); err == nil {
		assessment.TemplateID = &tpl.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := s.Repo.Create(assessment); err != nil {
		return nil, false, err
	}

	assessment.Answers = []model.AssessmentAnswer{}
	return assessment, true, nil
}

// SaveAnswer is the autosave primitive: it snapshots the option's score
// and upserts the answer keyed by (assessment, question). Repeated calls
// for the same question overwrite, never duplicate.
func (s *AssessmentService) SaveAnswer(assessmentID, questionID, selectedOptionID string) error {
	qid, ok := util.ParseID(questionID)
	if !ok {
		return fmt.Errorf("%w: invalid question_id", util.ErrValidation)
	}
	oid, ok := util.ParseID(selectedOptionID)
	if !ok {
		return fmt.Errorf("%w: invalid selected_option_id", util.ErrValidation)
	}

	option, err := s.Questions.FindOptionByID(oid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrOptionMissing
		}
		return err
	}

	return s.Repo.UpsertAnswer(&model.AssessmentAnswer{
		AssessmentID:     assessmentID,
		QuestionID:       qid,
		SelectedOptionID: oid,
		ScoreAwarded:     ComputeScoreAwarded(option),
	})
}

// BulkAnswer is one entry of the client-side backup a finalize request
// may carry. IDs arrive as strings; malformed entries are skipped.
type BulkAnswer struct {
	QuestionID       string `json:"question_id"`
	SelectedOptionID string `json:"selected_option_id"`
}

// FinalizeResult is what a successful finalize returns to the caller.
type FinalizeResult struct {
	ID            string            `json:"id"`
	Score         float64           `json:"score"`
	MaturityLevel string            `json:"maturity_level"`
	RiskLabel     string            `json:"risk_label"`
	AxisAnalysis  []model.AxisScore `json:"axis_analysis"`
}

// Finalize runs the whole scoring workflow in a single transaction:
// flush the bulk answer backup, read back the full answer set joined
// with sections, compute global and axis scores, classify, upsert the
// diagnosis and complete the assessment. Any failure rolls back
// everything, so partial diagnosis is never visible. Re-finalizing a
// COMPLETED assessment recomputes and overwrites.
func (s *AssessmentService) Finalize(assessmentID string, bulk []BulkAnswer) (*FinalizeResult, error) {
	if _, err := s.Repo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentMissing
		}
		return nil, err
	}

	var result FinalizeResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		questions := &repository.QuestionRepository{DB: tx}

		for _, entry := range bulk {
			qid, ok := util.ParseID(entry.QuestionID)
			if !ok {
				continue
			}
			oid, ok := util.ParseID(entry.SelectedOptionID)
			if !ok {
				continue
			}

			option, err := questions.FindOptionByID(oid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.Log.Warn("skipping bulk answer with unknown option",
						zap.String("assessment_id", assessmentID),
						zap.Uint("option_id", oid))
					continue
				}
				return err
			}

			if err := repo.UpsertAnswer(&model.AssessmentAnswer{
				AssessmentID:     assessmentID,
				QuestionID:       qid,
				SelectedOptionID: oid,
				ScoreAwarded:     ComputeScoreAwarded(option),
			}); err != nil {
				return err
			}
		}

		answers, err := repo.ListScoredAnswers(assessmentID)
		if err != nil {
			return err
		}

		globalScore, err := ComputeGlobalScore(answers)
		if err != nil {
			return err
		}

		axes := ComputeAxisScores(answers)
		level, risk := ClassifyMaturity(globalScore)

		axisJSON, err := json.Marshal(axes)
		if err != nil {
			return err
		}

		if err := repo.UpsertDiagnosis(&model.AssessmentDiagnosis{
			AssessmentID:  assessmentID,
			MaturityLevel: level,
			RiskLabel:     risk,
			AxisAnalysis:  axisJSON,
			ActionPlan:    []byte(`{}`),
		}); err != nil {
			return err
		}

		if err := repo.Complete(assessmentID, globalScore, time.Now()); err != nil {
			return err
		}

		result = FinalizeResult{
			ID:            assessmentID,
			Score:         globalScore,
			MaturityLevel: level,
			RiskLabel:     risk,
			AxisAnalysis:  axes,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// AssessmentDetail bundles an assessment with its diagnosis, when one
// exists.
type AssessmentDetail struct {
	Assessment *model.Assessment          `json:"assessment"`
	Diagnosis  *model.AssessmentDiagnosis `json:"diagnosis,omitempty"`
}

// Get fetches one assessment with answers and diagnosis, enforcing the
// caller's access to the owning company.
func (s *AssessmentService) Get(userID, assessmentID string) (*AssessmentDetail, error) {
	assessment, err := s.Repo.FindByID(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentMissing
		}
		return nil, err
	}

	app, err := s.Apps.FindByID(assessment.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrApplicationMissing
		}
		return nil, err
	}

	ok, err := s.Access.HasAccess(userID, app.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAuthorized
	}

	detail := &AssessmentDetail{Assessment: assessment}
	if diagnosis, err := s.Repo.FindDiagnosis(assessmentID); err == nil {
		detail.Diagnosis = diagnosis
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return detail, nil
}

// NormalizedScore reports the stored calculated_score through the
// configured normalization seam.
func (s *AssessmentService) NormalizedScore(a *model.Assessment) int {
	if a.CalculatedScore == nil {
		return 0
	}
	return NormalizeToPercentage(*a.CalculatedScore, s.Scoring.NormalizationDivisor)
}
