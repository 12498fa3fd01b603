package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	Service *service.ApplicationService
}

func NewApplicationController(svc *service.ApplicationService) *ApplicationController {
	return &ApplicationController{Service: svc}
}

// Create godoc
// @Summary Register an AI application under a company
// @Tags applications
// @Accept json
// @Produce json
// @Param body body service.CreateApplicationRequest true "Application payload"
// @Success 201 {object} util.Response{data=model.Application}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	app, err := c.Service.Create(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNotAuthorized):
			util.Forbidden(ctx, "You do not have access to this company")
		default:
			util.InternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, app)
}

// ListByCompany godoc
// @Summary List a company's applications
// @Tags applications
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} util.Response{data=[]model.Application}
// @Failure 403 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/applications [get]
func (c *ApplicationController) ListByCompany(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	apps, err := c.Service.ListByCompany(claims.UserID, ctx.Param("companyId"))
	if err != nil {
		if errors.Is(err, util.ErrNotAuthorized) {
			util.Forbidden(ctx, "You do not have access to this company")
			return
		}
		util.InternalError(ctx, err)
		return
	}

	util.Success(ctx, apps)
}
