package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/app/services"
	"github.com/rollcall/backend/internal/middleware"
)

// LecturerController handles lecturer profile and course management endpoints
type LecturerController struct {
	lecturerService *services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService *services.LecturerService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
	}
}

// GetProfile returns a lecturer profile with their owned courses
// @Summary Get lecturer profile
// @Description Retrieves a lecturer's profile together with the courses they teach
// @Tags lecturers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lecturer ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/{id} [get]
func (c *LecturerController) GetProfile(ctx *gin.Context) {
	profile, err := c.lecturerService.GetProfile(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      profile,
		Timestamp: time.Now(),
	})
}

// AddCourse creates or claims a course for the lecturer
// @Summary Add a course
// @Description Creates a course owned by the lecturer, or claims an existing course ID
// @Tags lecturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Course added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/courses [post]
func (c *LecturerController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.lecturerService.AddCourse(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.SuccessResponse{OK: true, Message: "Course added"},
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course the lecturer owns
// @Summary Delete a course
// @Description Deletes a course, only when the requesting lecturer owns it
// @Tags lecturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found or not owned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturers/courses/delete [post]
func (c *LecturerController) DeleteCourse(ctx *gin.Context) {
	var req dto.DeleteCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.lecturerService.DeleteCourse(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{OK: true, Message: "Course deleted"},
		Timestamp: time.Now(),
	})
}
