package models

// Course defines the course model based on the 'courses' table.
// LecturerID is nullable until a lecturer claims ownership.
type Course struct {
	CourseID   string  `json:"courseId" db:"course_id" example:"CS101"`
	CourseName string  `json:"courseName" db:"course_name" example:"Intro to Computing"`
	LecturerID *string `json:"lecturerId,omitempty" db:"lecturer_id"`
}

// Enrollment relates a student to a course. The pair is unique and
// re-enrolling is a no-op rather than an error.
type Enrollment struct {
	StudentID string `json:"studentId" db:"student_id"`
	CourseID  string `json:"courseId" db:"course_id"`
}
