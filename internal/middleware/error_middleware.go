package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// call it for every service error so status codes and error codes stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrRecordNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrFacultyNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrExamNotFound),
		errors.Is(err, apperrors.ErrFeeStructureNotFound),
		errors.Is(err, apperrors.ErrBookNotFound),
		errors.Is(err, apperrors.ErrLoanNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case errors.Is(err, apperrors.ErrDuplicateID),
		errors.Is(err, apperrors.ErrSalaryAlreadyGenerated),
		errors.Is(err, apperrors.ErrLoanClosed):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrMarksOutOfRange),
		errors.Is(err, apperrors.ErrFeeComponentMismatch),
		errors.Is(err, apperrors.ErrNoCopiesAvailable),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
