package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope
func HandleAPIError(c *gin.Context, err error) {
	detail := errorDetailFor(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.errorDetail.Message = custom.Message
		}
		if custom.Details != nil {
			detail.errorDetail = detail.errorDetail.WithDetails(custom.Details)
		}
	}

	c.JSON(detail.status, dto.NewErrorResponse(detail.errorDetail))
}

type mappedError struct {
	status      int
	errorDetail *dto.ErrorDetail
}

func errorDetailFor(err error) mappedError {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return mappedError{401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")}
	case errors.Is(err, apperrors.ErrTokenExpired):
		return mappedError{401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")}
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return mappedError{401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")}
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return mappedError{403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")}
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return mappedError{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")}
	case errors.Is(err, apperrors.ErrLecturerNotFound):
		return mappedError{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Lecturer not found")}
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return mappedError{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")}
	case errors.Is(err, apperrors.ErrUserNotFound):
		return mappedError{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")}
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return mappedError{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")}
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		return mappedError{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "ID already registered")}
	case errors.Is(err, apperrors.ErrDuplicateSubmission):
		return mappedError{409, dto.NewErrorDetail(dto.ErrorCodeDuplicateSubmission, "Attendance already submitted for this code")}
	case errors.Is(err, apperrors.ErrInvalidCode):
		return mappedError{400, dto.NewErrorDetail(dto.ErrorCodeInvalidCode, "Invalid attendance code")}
	case errors.Is(err, apperrors.ErrCodeExpired):
		return mappedError{400, dto.NewErrorDetail(dto.ErrorCodeCodeExpired, "Attendance code expired")}
	case errors.Is(err, apperrors.ErrConflict):
		return mappedError{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")}
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrInvalidFormat):
		return mappedError{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")}
	default:
		return mappedError{500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")}
	}
}
