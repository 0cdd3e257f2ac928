package dto

import "github.com/rollcall/backend/internal/app/models"

// EnrollRequest is the student payload for enrolling in a course.
// CourseName is carried so a first enrollment can create the course record.
type EnrollRequest struct {
	StudentID  string `json:"student_id" binding:"required" example:"S2021001"`
	CourseID   string `json:"course_id" binding:"required" example:"CS101"`
	CourseName string `json:"course_name" binding:"required" example:"Intro to Computing"`
}

// UnenrollRequest is the student payload for leaving a course
type UnenrollRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"S2021001"`
	CourseID  string `json:"course_id" binding:"required" example:"CS101"`
}

// AddCourseRequest is the lecturer payload for creating or claiming a course
type AddCourseRequest struct {
	LecturerID string `json:"lecturer_id" binding:"required" example:"L1001"`
	CourseID   string `json:"course_id" binding:"required" example:"CS101"`
	CourseName string `json:"course_name" binding:"required" example:"Intro to Computing"`
}

// DeleteCourseRequest is the lecturer payload for deleting an owned course
type DeleteCourseRequest struct {
	LecturerID string `json:"lecturer_id" binding:"required" example:"L1001"`
	CourseID   string `json:"course_id" binding:"required" example:"CS101"`
}

// ProfileResponse carries a user profile together with their courses
type ProfileResponse struct {
	Profile *models.User    `json:"profile"`
	Courses []models.Course `json:"courses"`
}
