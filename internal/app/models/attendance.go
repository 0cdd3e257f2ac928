package models

import (
	"time"
)

// AttendanceCode is one lecturer-initiated attendance session token,
// based on the 'attendance_codes' table. Rows are immutable; redemption
// only ever considers the most recently created row for a
// (course_id, code) pair, so stale duplicates are shadowed.
type AttendanceCode struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   string    `json:"courseId" db:"course_id"`
	Code       string    `json:"code" db:"code"`
	CreatedBy  string    `json:"createdBy" db:"created_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ValidUntil time.Time `json:"validUntil" db:"valid_until"`
}

// AttendanceRecord is one redemption, based on the 'attendance' table.
// StudentName is a denormalized snapshot taken at submission time.
// The (student_id, course_id, code_used) triple is unique at the store level.
type AttendanceRecord struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   string    `json:"studentId" db:"student_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	CourseID    string    `json:"courseId" db:"course_id"`
	CodeUsed    string    `json:"codeUsed" db:"code_used"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
}
