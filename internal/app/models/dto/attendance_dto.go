package dto

import "time"

// GenerateCodeRequest is the lecturer payload for minting an attendance code
type GenerateCodeRequest struct {
	LecturerID string `json:"lecturer_id" binding:"required" example:"L1001"`
	CourseID   string `json:"course_id" binding:"required" example:"CS101"`
}

// GenerateCodeResponse returns the minted code and its expiry
type GenerateCodeResponse struct {
	Code       string    `json:"code" example:"AB12CD"`
	ValidUntil time.Time `json:"valid_until"`
}

// SubmitAttendanceRequest is the student payload for redeeming a code
type SubmitAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"S2021001"`
	CourseID  string `json:"course_id" binding:"required" example:"CS101"`
	Code      string `json:"code" binding:"required" example:"AB12CD"`
}

// AttendanceRow is one attendance entry in a course/date listing
type AttendanceRow struct {
	StudentID   string    `json:"student_id" example:"S2021001"`
	StudentName string    `json:"student_name" example:"Ada Lovelace"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// AttendanceListResponse lists attendance for a course on a calendar date
type AttendanceListResponse struct {
	Total int             `json:"total" example:"42"`
	Rows  []AttendanceRow `json:"rows"`
}
