package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type PersonController struct {
	Service *service.PersonService
	Access  service.AccessChecker
}

func NewPersonController(svc *service.PersonService, access service.AccessChecker) *PersonController {
	return &PersonController{Service: svc, Access: access}
}

func (c *PersonController) authorize(ctx *gin.Context, companyID string) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return false
	}

	ok, err := c.Access.HasAccess(claims.UserID, companyID)
	if err != nil {
		util.InternalError(ctx, err)
		return false
	}
	if !ok {
		util.Forbidden(ctx, "You do not have access to this company")
		return false
	}
	return true
}

// List godoc
// @Summary List a company's people with their classification references
// @Tags people
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} util.Response{data=[]model.Person}
// @Failure 403 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/people [get]
func (c *PersonController) List(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if !c.authorize(ctx, companyID) {
		return
	}

	people, err := c.Service.ListByCompany(companyID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, people)
}

// Create godoc
// @Summary Add a person to a company
// @Tags people
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param body body service.PersonRequest true "Person payload"
// @Success 201 {object} util.Response{data=model.Person}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/people [post]
func (c *PersonController) Create(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if !c.authorize(ctx, companyID) {
		return
	}

	var req service.PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	person, err := c.Service.Create(companyID, req)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Created(ctx, person)
}

// Update godoc
// @Summary Update a person
// @Tags people
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param personId path string true "Person ID"
// @Param body body service.PersonRequest true "Person payload"
// @Success 200 {object} util.Response{data=model.Person}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/people/{personId} [put]
func (c *PersonController) Update(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if !c.authorize(ctx, companyID) {
		return
	}

	var req service.PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	person, err := c.Service.Update(companyID, ctx.Param("personId"), req)
	if err != nil {
		if errors.Is(err, util.ErrPersonMissing) {
			util.NotFound(ctx, "Person not found in this company")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, person)
}
