package util

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotAuthorized      = errors.New("unauthorized access to this company")
	ErrApplicationMissing = errors.New("application not found")
	ErrAssessmentMissing  = errors.New("assessment not found")
	ErrOptionMissing      = errors.New("selected option not found")
	ErrCompanyMissing     = errors.New("company not found")
	ErrPersonMissing      = errors.New("person not found in this company")
	ErrUserMissing        = errors.New("user not found")
	ErrAccessMissing      = errors.New("user access not found for this company")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrNoAnswers          = errors.New("no answers to finalize")
	ErrRoleForbidden      = errors.New("insufficient permissions to modify this role")
)
