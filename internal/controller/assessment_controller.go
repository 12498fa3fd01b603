package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"ai_maturity_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// GetQuestions godoc
// @Summary List the assessment questionnaire
// @Description Returns every question with its options and section, ordered for display
// @Tags assessment
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	questions, err := c.Service.ListQuestions(ctx.Request.Context())
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

type InitAssessmentRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
}

// Init godoc
// @Summary Start or resume an assessment
// @Description Creates an IN_PROGRESS assessment for the application, or returns the existing one
// @Tags assessment
// @Accept json
// @Produce json
// @Param body body InitAssessmentRequest true "Target application"
// @Success 200 {object} util.Response{data=model.Assessment} "Resumed existing assessment"
// @Success 201 {object} util.Response{data=model.Assessment} "Created new assessment"
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/assessment/init [post]
func (c *AssessmentController) Init(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req InitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, created, err := c.Service.Init(claims.UserID, req.ApplicationID)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	if created {
		util.Created(ctx, assessment)
		return
	}
	util.Success(ctx, assessment)
}

type SaveAnswerRequest struct {
	QuestionID       string `json:"question_id" binding:"required"`
	SelectedOptionID string `json:"selected_option_id" binding:"required"`
}

// SaveAnswer godoc
// @Summary Autosave one answer
// @Description Upserts the answer for a question, snapshotting the option score
// @Tags assessment
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param body body SaveAnswerRequest true "Selected option"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/assessment/{id}/answers [put]
func (c *AssessmentController) SaveAnswer(ctx *gin.Context) {
	var req SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.SaveAnswer(ctx.Param("id"), req.QuestionID, req.SelectedOptionID); err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"success": true})
}

type FinalizeRequest struct {
	Answers []service.BulkAnswer `json:"answers"`
}

// Finalize godoc
// @Summary Finalize an assessment
// @Description Flushes the client answer backup, computes global and axis scores, classifies maturity and completes the assessment atomically
// @Tags assessment
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param body body FinalizeRequest false "Client-side answer backup"
// @Success 200 {object} util.Response{data=service.FinalizeResult}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response "Assessment has no answers"
// @Failure 500 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/assessment/{id}/finalize [post]
func (c *AssessmentController) Finalize(ctx *gin.Context) {
	var req FinalizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Finalize(ctx.Param("id"), req.Answers)
	if err != nil {
		monitoring.FinalizeCounter.WithLabelValues("error").Inc()
		c.renderError(ctx, err)
		return
	}

	monitoring.FinalizeCounter.WithLabelValues("success").Inc()
	util.Success(ctx, result)
}

// Get godoc
// @Summary Fetch one assessment
// @Description Returns the assessment with its answers and diagnosis when present
// @Tags assessment
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} util.Response{data=service.AssessmentDetail}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/assessment/{id} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.Service.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

func (c *AssessmentController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotAuthorized):
		util.Forbidden(ctx, "You do not have access to this company")
	case errors.Is(err, util.ErrApplicationMissing):
		util.NotFound(ctx, "Application not found")
	case errors.Is(err, util.ErrAssessmentMissing):
		util.NotFound(ctx, "Assessment not found")
	case errors.Is(err, util.ErrOptionMissing):
		util.NotFound(ctx, "Question option not found")
	case errors.Is(err, util.ErrNoAnswers):
		util.UnprocessableEntity(ctx, "Cannot finalize an assessment with no answers")
	default:
		util.InternalError(ctx, err)
	}
}
