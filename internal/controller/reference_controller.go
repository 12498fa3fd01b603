package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReferenceController struct {
	Service *service.ReferenceService
}

func NewReferenceController(svc *service.ReferenceService) *ReferenceController {
	return &ReferenceController{Service: svc}
}

// Archetypes godoc
// @Summary List person archetypes
// @Tags references
// @Produce json
// @Success 200 {object} util.Response{data=[]model.RefArchetype}
// @Security BearerAuth
// @Router /api/v1/references/archetypes [get]
func (c *ReferenceController) Archetypes(ctx *gin.Context) {
	items, err := c.Service.Archetypes()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// TechnicalLevels godoc
// @Summary List technical proficiency levels
// @Tags references
// @Produce json
// @Success 200 {object} util.Response{data=[]model.RefTechLevel}
// @Security BearerAuth
// @Router /api/v1/references/technical-levels [get]
func (c *ReferenceController) TechnicalLevels(ctx *gin.Context) {
	items, err := c.Service.TechnicalLevels()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// BusinessLevels godoc
// @Summary List business proficiency levels
// @Tags references
// @Produce json
// @Success 200 {object} util.Response{data=[]model.RefBusinessLevel}
// @Security BearerAuth
// @Router /api/v1/references/business-levels [get]
func (c *ReferenceController) BusinessLevels(ctx *gin.Context) {
	items, err := c.Service.BusinessLevels()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
