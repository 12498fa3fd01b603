package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BusinessAreaController struct {
	Service *service.BusinessAreaService
	Access  service.AccessChecker
}

func NewBusinessAreaController(svc *service.BusinessAreaService, access service.AccessChecker) *BusinessAreaController {
	return &BusinessAreaController{Service: svc, Access: access}
}

func (c *BusinessAreaController) authorize(ctx *gin.Context, companyID string) bool {
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
// @Summary List a company's business areas with sub-areas
// @Tags business-areas
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} util.Response{data=[]model.BusinessArea}
// @Failure 403 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/areas [get]
func (c *BusinessAreaController) List(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if !c.authorize(ctx, companyID) {
		return
	}

	areas, err := c.Service.ListByCompany(companyID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, areas)
}

type AreaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateArea godoc
// @Summary Create a business area
// @Tags business-areas
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param body body AreaRequest true "Area payload"
// @Success 201 {object} util.Response{data=model.BusinessArea}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/areas [post]
func (c *BusinessAreaController) CreateArea(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if !c.authorize(ctx, companyID) {
		return
	}

	var req AreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	area, err := c.Service.CreateArea(companyID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Created(ctx, area)
}

// UpdateArea godoc
// @Summary Update a business area
// @Tags business-areas
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param areaId path string true "Area ID"
// @Param body body AreaRequest true "Area payload"
// @Success 200 {object} util.Response{data=model.BusinessArea}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/areas/{areaId} [put]
func (c *BusinessAreaController) UpdateArea(ctx *gin.Context) {
	if !c.authorize(ctx, ctx.Param("companyId")) {
		return
	}

	var req AreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	area, err := c.Service.UpdateArea(ctx.Param("areaId"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Business area not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, area)
}

// DeleteArea godoc
// @Summary Delete a business area and its sub-areas
// @Tags business-areas
// @Produce json
// @Param companyId path string true "Company ID"
// @Param areaId path string true "Area ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/areas/{areaId} [delete]
func (c *BusinessAreaController) DeleteArea(ctx *gin.Context) {
	if !c.authorize(ctx, ctx.Param("companyId")) {
		return
	}

	if err := c.Service.DeleteArea(ctx.Param("areaId")); err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

type SubAreaRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSubArea godoc
// @Summary Create a sub-area under a business area
// @Tags business-areas
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param areaId path string true "Area ID"
// @Param body body SubAreaRequest true "Sub-area payload"
// @Success 201 {object} util.Response{data=model.BusinessSubArea}
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/areas/{areaId}/subareas [post]
func (c *BusinessAreaController) CreateSubArea(ctx *gin.Context) {
	if !c.authorize(ctx, ctx.Param("companyId")) {
		return
	}

	var req SubAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.Service.CreateSubArea(ctx.Param("areaId"), req.Name)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// UpdateSubArea godoc
// @Summary Rename a sub-area
// @Tags business-areas
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param subAreaId path string true "Sub-area ID"
// @Param body body SubAreaRequest true "Sub-area payload"
// @Success 200 {object} util.Response{data=model.BusinessSubArea}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/subareas/{subAreaId} [put]
func (c *BusinessAreaController) UpdateSubArea(ctx *gin.Context) {
	if !c.authorize(ctx, ctx.Param("companyId")) {
		return
	}

	var req SubAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.Service.UpdateSubArea(ctx.Param("subAreaId"), req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Sub-area not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// DeleteSubArea godoc
// @Summary Delete a sub-area
// @Tags business-areas
// @Produce json
// @Param companyId path string true "Company ID"
// @Param subAreaId path string true "Sub-area ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/subareas/{subAreaId} [delete]
func (c *BusinessAreaController) DeleteSubArea(ctx *gin.Context) {
	if !c.authorize(ctx, ctx.Param("companyId")) {
		return
	}

	if err := c.Service.DeleteSubArea(ctx.Param("subAreaId")); err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
