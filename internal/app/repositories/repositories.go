package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	AdminRepository          *AdminRepository
	CourseRepository         *CourseRepository
	EnrollmentRepository     *EnrollmentRepository
	AttendanceCodeRepository *AttendanceCodeRepository
	AttendanceRepository     *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		AdminRepository:          NewAdminRepository(db),
		CourseRepository:         NewCourseRepository(db),
		EnrollmentRepository:     NewEnrollmentRepository(db),
		AttendanceCodeRepository: NewAttendanceCodeRepository(db),
		AttendanceRepository:     NewAttendanceRepository(db),
	}
}
