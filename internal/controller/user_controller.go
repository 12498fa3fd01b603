package controller

import (
	"ai_maturity_backend/internal/service"
	"ai_maturity_backend/internal/util"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
	Storage *service.StorageService
	Access  service.AccessChecker
}

func NewUserController(svc *service.UserService, storage *service.StorageService, access service.AccessChecker) *UserController {
	return &UserController{Service: svc, Storage: storage, Access: access}
}

func (c *UserController) requireAccess(ctx *gin.Context, companyID string) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}

	ok, err := c.Access.HasAccess(claims.UserID, companyID)
	if err != nil {
		util.InternalError(ctx, err)
		return nil, false
	}
	if !ok {
		util.Forbidden(ctx, "You do not have access to this company")
		return nil, false
	}
	return claims, true
}

// ListByCompany godoc
// @Summary List a company's users and their roles
// @Tags users
// @Produce json
// @Param companyId path string true "Company ID"
// @Success 200 {object} util.Response{data=[]service.CompanyUser}
// @Failure 403 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/users [get]
func (c *UserController) ListByCompany(ctx *gin.Context) {
	companyID := ctx.Param("companyId")
	if _, ok := c.requireAccess(ctx, companyID); !ok {
		return
	}

	users, err := c.Service.ListByCompany(companyID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Invite godoc
// @Summary Invite a user into a company
// @Description Creates the user when the email is unknown, then grants company access with the given role
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.InviteUserRequest true "Invite payload"
// @Success 201 {object} util.Response{data=service.CompanyUser}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "User already has access"
// @Security BearerAuth
// @Router /api/v1/users/invite [post]
func (c *UserController) Invite(ctx *gin.Context) {
	var req service.InviteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if _, ok := c.requireAccess(ctx, req.CompanyID); !ok {
		return
	}

	invited, err := c.Service.Invite(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "User already has access to this company")
		default:
			util.InternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, invited)
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateRole godoc
// @Summary Change a user's role in a company
// @Description OWNER may change any role; ADMIN any role except OWNER
// @Tags users
// @Accept json
// @Produce json
// @Param companyId path string true "Company ID"
// @Param userId path string true "Target user ID"
// @Param body body UpdateRoleRequest true "New role"
// @Success 200 {object} util.Response{data=service.CompanyUser}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/users/{userId}/role [put]
func (c *UserController) UpdateRole(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.Service.UpdateRole(claims.UserID, ctx.Param("userId"), ctx.Param("companyId"), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrNotAuthorized), errors.Is(err, util.ErrRoleForbidden):
			util.Forbidden(ctx, "You cannot modify this role")
		case errors.Is(err, util.ErrAccessMissing):
			util.NotFound(ctx, "User has no access to this company")
		default:
			util.InternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, updated)
}

// RemoveAccess godoc
// @Summary Revoke a user's access to a company
// @Tags users
// @Produce json
// @Param companyId path string true "Company ID"
// @Param userId path string true "Target user ID"
// @Success 204 "Removed"
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/companies/{companyId}/users/{userId} [delete]
func (c *UserController) RemoveAccess(ctx *gin.Context) {
	if _, ok := c.requireAccess(ctx, ctx.Param("companyId")); !ok {
		return
	}

	if err := c.Service.RemoveAccess(ctx.Param("userId"), ctx.Param("companyId")); err != nil {
		if errors.Is(err, util.ErrAccessMissing) {
			util.NotFound(ctx, "User has no access to this company")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary Reset the caller's password
// @Tags users
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "New password"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/users/password [put]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.ResetPassword(claims.UserID, req.Password); err != nil {
		if errors.Is(err, util.ErrUserMissing) {
			util.NotFound(ctx, "User not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"updated": true})
}

// UploadAvatar godoc
// @Summary Upload the caller's avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /api/v1/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%s-%d%s", claims.UserID, time.Now().UnixMilli(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	avatarURL, err := c.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, contentType)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	if err := c.Service.UpdateAvatar(claims.UserID, avatarURL); err != nil {
		util.InternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar_url": avatarURL})
}
