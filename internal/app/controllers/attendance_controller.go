package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/app/services"
	"github.com/rollcall/backend/internal/middleware"
)

// AttendanceController handles code issuance, redemption, listing and export
type AttendanceController struct {
	attendanceService *services.AttendanceService
	exportService     *services.ExportService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, exportService *services.ExportService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		exportService:     exportService,
	}
}

// GenerateCode mints a new attendance code for a course
// @Summary Generate an attendance code
// @Description Mints a short-lived attendance code for a course the lecturer owns
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateCodeRequest true "Lecturer and course"
// @Success 201 {object} dto.APIResponse{data=dto.GenerateCodeResponse} "Code generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Course not owned by lecturer"
// @Failure 404 {object} dto.ErrorResponse "Course or lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/code [post]
func (c *AttendanceController) GenerateCode(ctx *gin.Context) {
	var req dto.GenerateCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid code request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	codeRow, err := c.attendanceService.IssueCode(ctx, req.LecturerID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.GenerateCodeResponse{
			Code:       codeRow.Code,
			ValidUntil: codeRow.ValidUntil,
		},
		Timestamp: time.Now(),
	})
}

// SubmitAttendance redeems an attendance code for a student
// @Summary Submit attendance
// @Description Records attendance when a valid, unexpired code is redeemed for the first time
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAttendanceRequest true "Student, course and code"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Attendance already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/submit [post]
func (c *AttendanceController) SubmitAttendance(ctx *gin.Context) {
	var req dto.SubmitAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid submission data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.attendanceService.SubmitAttendance(ctx, req.StudentID, req.CourseID, req.Code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.SuccessResponse{OK: true, Message: "Attendance recorded"},
		Timestamp: time.Now(),
	})
}

// ListAttendance lists attendance for a course on a calendar date
// @Summary List attendance
// @Description Lists all attendance entries for a course on a given date, oldest first
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse} "Attendance listed"
// @Failure 400 {object} dto.ErrorResponse "Invalid date format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{courseId} [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	courseID := ctx.Param("courseId")
	date := ctx.Query("date")

	resp, err := c.attendanceService.ListAttendance(ctx, courseID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// ExportAttendance streams the attendance listing as an xlsx workbook
// @Summary Export attendance
// @Description Downloads the attendance listing for a course and date as a spreadsheet
// @Tags attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {file} binary "Workbook download"
// @Failure 400 {object} dto.ErrorResponse "Invalid date format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{courseId}/export [get]
func (c *AttendanceController) ExportAttendance(ctx *gin.Context) {
	courseID := ctx.Param("courseId")
	date := ctx.Query("date")

	buf, filename, err := c.exportService.ExportAttendance(ctx, courseID, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, services.ExcelContentType, buf.Bytes())
}
