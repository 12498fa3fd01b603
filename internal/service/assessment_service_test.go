package service

import (
	"ai_maturity_backend/internal/config"
	"ai_maturity_backend/internal/model"
	"ai_maturity_backend/internal/repository"
	"ai_maturity_backend/internal/util"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One pooled connection, or each one would get its own in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tenant{},
		&model.TenantUser{},
		&model.Company{},
		&model.UserCompanyAccess{},
		&model.Application{},
		&model.AssessmentSection{},
		&model.Question{},
		&model.QuestionOption{},
		&model.AssessmentTemplate{},
		&model.Assessment{},
		&model.AssessmentAnswer{},
		&model.AssessmentDiagnosis{},
	))

	return db
}

type assessmentFixture struct {
	svc       *AssessmentService
	db        *gorm.DB
	user      *model.User
	company   *model.Company
	app       *model.Application
	questions []model.Question
}

// seedAssessmentFixture sets up a user with company access, one
// application, two sections with three questions, and a five-option
// score scale per question.
func seedAssessmentFixture(t *testing.T) *assessmentFixture {
	t.Helper()
	db := openTestDB(t)

	user := &model.User{FullName: "Ana Silva", Email: "ana@example.com"}
	require.NoError(t, db.Create(user).Error)

	tenant := &model.Tenant{Name: "Base Ana", Slug: "base-test"}
	require.NoError(t, db.Create(tenant).Error)

	company := &model.Company{TenantID: tenant.ID, Name: "Acme"}
	require.NoError(t, db.Create(company).Error)

	require.NoError(t, db.Create(&model.UserCompanyAccess{
		UserID:    user.ID,
		CompanyID: company.ID,
		Role:      model.RoleOwner,
	}).Error)

	app := &model.Application{CompanyID: company.ID, Name: "Chatbot"}
	require.NoError(t, db.Create(app).Error)

	sections := []model.AssessmentSection{
		{Title: "Governança e Estratégia"},
		{Title: "Dados e Infraestrutura"},
	}
	require.NoError(t, db.Create(&sections).Error)

	questions := []model.Question{
		{Text: "Q1", OrderIndex: 1, SectionID: sections[0].ID},
		{Text: "Q2", OrderIndex: 2, SectionID: sections[0].ID},
		{Text: "Q3", OrderIndex: 3, SectionID: sections[1].ID},
	}
	require.NoError(t, db.Create(&questions).Error)

	scale := []int{0, 25, 50, 75, 100}
	for _, q := range questions {
		for _, v := range scale {
			require.NoError(t, db.Create(&model.QuestionOption{
				QuestionID: q.ID,
				Text:       fmt.Sprintf("opt-%d", v),
				ScoreValue: v,
			}).Error)
		}
	}

	require.NoError(t, db.Create(&model.AssessmentTemplate{
		Name:          "v1",
		VersionNumber: 1,
		IsActive:      true,
	}).Error)

	companyRepo := repository.NewCompanyRepository(db)
	svc := NewAssessmentService(
		repository.NewAssessmentRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewApplicationRepository(db),
		companyRepo,
		db,
		nil,
		config.ScoringConfig{NormalizationDivisor: 1, CatalogCacheTTL: 300},
	)

	return &assessmentFixture{
		svc:       svc,
		db:        db,
		user:      user,
		company:   company,
		app:       app,
		questions: questions,
	}
}

// optionWithScore returns the option id for a question at the given
// score value on the seeded scale.
func (f *assessmentFixture) optionWithScore(t *testing.T, questionID uint, score int) uint {
	t.Helper()
	var opt model.QuestionOption
	require.NoError(t, f.db.Where("question_id = ? AND score_value = ?", questionID, score).First(&opt).Error)
	return opt.ID
}

func TestInitCreatesThenResumes(t *testing.T) {
	f := seedAssessmentFixture(t)

	first, created, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.AssessmentInProgress, first.Status)
	require.NotNil(t, first.TemplateID)

	second, created, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, f.db.Model(&model.Assessment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInitUnknownApplication(t *testing.T) {
	f := seedAssessmentFixture(t)

	_, _, err := f.svc.Init(f.user.ID, model.GenerateUUID())
	assert.ErrorIs(t, err, util.ErrApplicationMissing)
}

func TestInitWithoutCompanyAccess(t *testing.T) {
	f := seedAssessmentFixture(t)

	outsider := &model.User{FullName: "Beto", Email: "beto@example.com"}
	require.NoError(t, f.db.Create(outsider).Error)

	_, _, err := f.svc.Init(outsider.ID, f.app.ID)
	assert.ErrorIs(t, err, util.ErrNotAuthorized)
}

func TestSaveAnswerUpsertsLastWins(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	q := f.questions[0]
	low := f.optionWithScore(t, q.ID, 25)
	high := f.optionWithScore(t, q.ID, 75)

	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(q.ID), fmt.Sprint(low)))
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(q.ID), fmt.Sprint(high)))

	var answers []model.AssessmentAnswer
	require.NoError(t, f.db.Where("assessment_id = ?", assessment.ID).Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, high, answers[0].SelectedOptionID)
	assert.Equal(t, 75, answers[0].ScoreAwarded)
}

func TestSaveAnswerRejectsMalformedIDs(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.SaveAnswer(assessment.ID, "abc", "1"), util.ErrValidation)
	assert.ErrorIs(t, f.svc.SaveAnswer(assessment.ID, "1", "0"), util.ErrValidation)
}

func TestSaveAnswerUnknownOption(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	err = f.svc.SaveAnswer(assessment.ID, fmt.Sprint(f.questions[0].ID), "99999")
	assert.ErrorIs(t, err, util.ErrOptionMissing)
}

func TestSaveAnswerSnapshotsScore(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	q := f.questions[0]
	opt := f.optionWithScore(t, q.ID, 50)
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(q.ID), fmt.Sprint(opt)))

	// Rescoring the option after the answer was saved must not change
	// the awarded score.
	require.NoError(t, f.db.Model(&model.QuestionOption{}).Where("id = ?", opt).Update("score_value", 100).Error)

	var answer model.AssessmentAnswer
	require.NoError(t, f.db.Where("assessment_id = ?", assessment.ID).First(&answer).Error)
	assert.Equal(t, 50, answer.ScoreAwarded)

	result, err := f.svc.Finalize(assessment.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Score)
}

func TestFinalizeComputesScoresAndDiagnosis(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	// Section 1: 100 and 50, section 2: 25. Global mean 58.33.
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(f.questions[0].ID), fmt.Sprint(f.optionWithScore(t, f.questions[0].ID, 100))))
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(f.questions[1].ID), fmt.Sprint(f.optionWithScore(t, f.questions[1].ID, 50))))
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(f.questions[2].ID), fmt.Sprint(f.optionWithScore(t, f.questions[2].ID, 25))))

	result, err := f.svc.Finalize(assessment.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 58.33, result.Score)
	assert.Equal(t, MaturityIntermediate, result.MaturityLevel)
	assert.Equal(t, RiskModerate, result.RiskLabel)
	require.Len(t, result.AxisAnalysis, 2)
	assert.Equal(t, 75.0, result.AxisAnalysis[0].Score)
	assert.Equal(t, 25.0, result.AxisAnalysis[1].Score)

	var stored model.Assessment
	require.NoError(t, f.db.First(&stored, "id = ?", assessment.ID).Error)
	assert.Equal(t, model.AssessmentCompleted, stored.Status)
	require.NotNil(t, stored.CalculatedScore)
	assert.Equal(t, 58.33, *stored.CalculatedScore)
	assert.NotNil(t, stored.FinishedAt)

	var diagnosis model.AssessmentDiagnosis
	require.NoError(t, f.db.Where("assessment_id = ?", assessment.ID).First(&diagnosis).Error)
	assert.Equal(t, MaturityIntermediate, diagnosis.MaturityLevel)

	var axes []model.AxisScore
	require.NoError(t, json.Unmarshal(diagnosis.AxisAnalysis, &axes))
	assert.Len(t, axes, 2)
}

func TestFinalizeFlushesBulkBackup(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	q := f.questions[0]
	opt := f.optionWithScore(t, q.ID, 100)

	bulk := []BulkAnswer{
		{QuestionID: fmt.Sprint(q.ID), SelectedOptionID: fmt.Sprint(opt)},
		{QuestionID: "not-a-number", SelectedOptionID: "1"},
		{QuestionID: fmt.Sprint(f.questions[1].ID), SelectedOptionID: "99999"},
	}

	result, err := f.svc.Finalize(assessment.ID, bulk)
	require.NoError(t, err)

	// Only the well-formed entry with a real option counted.
	assert.Equal(t, 100.0, result.Score)

	var answers []model.AssessmentAnswer
	require.NoError(t, f.db.Where("assessment_id = ?", assessment.ID).Find(&answers).Error)
	assert.Len(t, answers, 1)
}

func TestFinalizeEmptyAnswersRejected(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	_, err = f.svc.Finalize(assessment.ID, nil)
	assert.ErrorIs(t, err, util.ErrNoAnswers)

	// The rollback leaves the assessment untouched.
	var stored model.Assessment
	require.NoError(t, f.db.First(&stored, "id = ?", assessment.ID).Error)
	assert.Equal(t, model.AssessmentInProgress, stored.Status)
	assert.Nil(t, stored.CalculatedScore)

	var count int64
	require.NoError(t, f.db.Model(&model.AssessmentDiagnosis{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFinalizeUnknownAssessment(t *testing.T) {
	f := seedAssessmentFixture(t)

	_, err := f.svc.Finalize(model.GenerateUUID(), nil)
	assert.ErrorIs(t, err, util.ErrAssessmentMissing)
}

func TestFinalizeTwiceOverwritesDiagnosis(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	q := f.questions[0]
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(q.ID), fmt.Sprint(f.optionWithScore(t, q.ID, 25))))

	first, err := f.svc.Finalize(assessment.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, MaturityBeginner, first.MaturityLevel)

	// The caller changes their mind; the second pass recomputes.
	second, err := f.svc.Finalize(assessment.ID, []BulkAnswer{
		{QuestionID: fmt.Sprint(q.ID), SelectedOptionID: fmt.Sprint(f.optionWithScore(t, q.ID, 100))},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, second.Score)
	assert.Equal(t, MaturityAdvanced, second.MaturityLevel)

	var count int64
	require.NoError(t, f.db.Model(&model.AssessmentDiagnosis{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetEnforcesAccess(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	detail, err := f.svc.Get(f.user.ID, assessment.ID)
	require.NoError(t, err)
	assert.Equal(t, assessment.ID, detail.Assessment.ID)
	assert.Nil(t, detail.Diagnosis)

	outsider := &model.User{FullName: "Beto", Email: "beto@example.com"}
	require.NoError(t, f.db.Create(outsider).Error)

	_, err = f.svc.Get(outsider.ID, assessment.ID)
	assert.ErrorIs(t, err, util.ErrNotAuthorized)
}

func TestGetIncludesDiagnosisAfterFinalize(t *testing.T) {
	f := seedAssessmentFixture(t)

	assessment, _, err := f.svc.Init(f.user.ID, f.app.ID)
	require.NoError(t, err)

	q := f.questions[0]
	require.NoError(t, f.svc.SaveAnswer(assessment.ID, fmt.Sprint(q.ID), fmt.Sprint(f.optionWithScore(t, q.ID, 75))))

	_, err = f.svc.Finalize(assessment.ID, nil)
	require.NoError(t, err)

	detail, err := f.svc.Get(f.user.ID, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Diagnosis)
	assert.Equal(t, MaturityAdvanced, detail.Diagnosis.MaturityLevel)
}

func TestListQuestionsWithoutRedis(t *testing.T) {
	f := seedAssessmentFixture(t)

	qs, err := f.svc.ListQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, "Q1", qs[0].Text)
	require.Len(t, qs[0].Options, 5)
	require.NotNil(t, qs[0].Section)
}

func TestNormalizedScore(t *testing.T) {
	f := seedAssessmentFixture(t)

	score := 58.33
	assessment := &model.Assessment{CalculatedScore: &score}
	assert.Equal(t, 58, f.svc.NormalizedScore(assessment))
	assert.Equal(t, 0, f.svc.NormalizedScore(&model.Assessment{}))

	f.svc.Scoring.NormalizationDivisor = 2
	assert.Equal(t, 29, f.svc.NormalizedScore(assessment))
}
