package services

import (
	"errors"

	"github.com/amrit073/NEPGA/entity"
	"github.com/amrit073/NEPGA/utils"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("application not found")
	ErrUnauthorized         = utils.ErrUnauthorized
	ErrInvalidStatus        = entity.ErrInvalidStatus
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)
