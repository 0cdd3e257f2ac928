package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rollcall/backend/internal/app/controllers"
	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	lecturerController *controllers.LecturerController,
	attendanceController *controllers.AttendanceController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", loginLimiter.Limit(), authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("/:id", studentController.GetProfile)

			studentsRoleProtected := students.Group("")
			studentsRoleProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent), string(models.RoleAdmin)))
			{
				studentsRoleProtected.POST("/enroll", studentController.Enroll)
				studentsRoleProtected.POST("/unenroll", studentController.Unenroll)
			}
		}

		// Lecturer routes
		lecturers := authenticated.Group("/lecturers")
		{
			lecturers.GET("/:id", lecturerController.GetProfile)

			lecturersRoleProtected := lecturers.Group("")
			lecturersRoleProtected.Use(authMiddleware.RoleRequired(string(models.RoleLecturer), string(models.RoleAdmin)))
			{
				lecturersRoleProtected.POST("/courses", lecturerController.AddCourse)
				lecturersRoleProtected.POST("/courses/delete", lecturerController.DeleteCourse)
			}
		}

		// Attendance routes
		attendance := authenticated.Group("/attendance")
		{
			attendanceLecturerProtected := attendance.Group("")
			attendanceLecturerProtected.Use(authMiddleware.RoleRequired(string(models.RoleLecturer), string(models.RoleAdmin)))
			{
				attendanceLecturerProtected.POST("/code", attendanceController.GenerateCode)
				attendanceLecturerProtected.GET("/:courseId", attendanceController.ListAttendance)
				attendanceLecturerProtected.GET("/:courseId/export", attendanceController.ExportAttendance)
			}

			attendanceStudentProtected := attendance.Group("")
			attendanceStudentProtected.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				attendanceStudentProtected.POST("/submit", attendanceController.SubmitAttendance)
			}
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("/users", adminController.CreateUser)
			admin.GET("/users/:id", adminController.GetUser)
			admin.PUT("/users/:id", adminController.UpdateUser)
			admin.PUT("/users/:id/password", adminController.ResetPassword)
			admin.DELETE("/users/:id", adminController.DeleteUser)
		}
	}

	// Prometheus scrape endpoint (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
