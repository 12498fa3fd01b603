package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	Service *service.CompanyService
}

func NewCompanyController(svc *service.CompanyService) *CompanyController {
	return &CompanyController{Service: svc}
}

// List godoc
// @Summary List companies the caller belongs to
// @Tags companies
// @Produce json
// @Success 200 {object} util.Response{data=[]service.CompanyWithRole}
// @Failure 401 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	companies, err := c.Service.ListForUser(claims.UserID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	util.Success(ctx, companies)
}

// Create godoc
// @Summary Create a company
// @Description Creates the company under the caller's tenant, bootstrapping the tenant on first use, and grants the caller OWNER access
// @Tags companies
// @Accept json
// @Produce json
// @Param body body service.CreateCompanyRequest true "Company payload"
// @Success 201 {object} util.Response{data=model.Company}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.Service.Create(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserMissing):
			util.NotFound(ctx, "User not found")
		default:
			util.InternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, company)
}
