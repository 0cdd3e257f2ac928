package services

import (
	"context"
	"sort"
	"time"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/pkg/apperrors"
	"github.com/rollcall/backend/internal/pkg/helpers"
)

// In-memory repository fakes backing the service tests. They mirror the
// store semantics the SQL implementations rely on: latest-row-wins code
// lookup and a unique (student, course, code) submission constraint.

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByIDAndRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	user, ok := m.users[id]
	if !ok || user.Role != role {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockUserRepo) UpdateFields(_ context.Context, id string, fields map[string]string) error {
	user, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	for column, value := range fields {
		v := value
		switch column {
		case "name":
			user.Name = v
		case "department":
			user.Department = &v
		case "major":
			user.Major = &v
		case "photo_url":
			user.PhotoURL = &v
		case "password":
			user.Password = v
		}
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	user, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type mockAdminRepo struct {
	admins map[string]*models.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*models.Admin)}
}

func (m *mockAdminRepo) GetByID(_ context.Context, adminID string) (*models.Admin, error) {
	admin, ok := m.admins[adminID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *admin
	return &copied, nil
}

func (m *mockAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if _, ok := m.admins[admin.AdminID]; ok {
		return nil
	}
	copied := *admin
	m.admins[admin.AdminID] = &copied
	return nil
}

type mockCourseRepo struct {
	courses map[string]*models.Course
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*models.Course)}
}

func (m *mockCourseRepo) GetByID(_ context.Context, courseID string) (*models.Course, error) {
	course, ok := m.courses[courseID]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (m *mockCourseRepo) EnsureExists(_ context.Context, courseID, courseName string) error {
	if _, ok := m.courses[courseID]; !ok {
		m.courses[courseID] = &models.Course{CourseID: courseID, CourseName: courseName}
	}
	return nil
}

func (m *mockCourseRepo) Upsert(_ context.Context, course *models.Course) error {
	copied := *course
	m.courses[course.CourseID] = &copied
	return nil
}

func (m *mockCourseRepo) GetByLecturer(_ context.Context, lecturerID string) ([]models.Course, error) {
	var out []models.Course
	for _, course := range m.courses {
		if course.LecturerID != nil && *course.LecturerID == lecturerID {
			out = append(out, *course)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (m *mockCourseRepo) DeleteOwned(_ context.Context, courseID, lecturerID string) (bool, error) {
	course, ok := m.courses[courseID]
	if !ok || course.LecturerID == nil || *course.LecturerID != lecturerID {
		return false, nil
	}
	delete(m.courses, courseID)
	return true, nil
}

type enrollmentKey struct {
	studentID string
	courseID  string
}

type mockEnrollmentRepo struct {
	enrollments map[enrollmentKey]bool
	courses     *mockCourseRepo
}

func newMockEnrollmentRepo(courses *mockCourseRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		enrollments: make(map[enrollmentKey]bool),
		courses:     courses,
	}
}

func (m *mockEnrollmentRepo) Enroll(_ context.Context, studentID, courseID string) error {
	m.enrollments[enrollmentKey{studentID, courseID}] = true
	return nil
}

func (m *mockEnrollmentRepo) Unenroll(_ context.Context, studentID, courseID string) (bool, error) {
	key := enrollmentKey{studentID, courseID}
	if !m.enrollments[key] {
		return false, nil
	}
	delete(m.enrollments, key)
	return true, nil
}

func (m *mockEnrollmentRepo) CoursesByStudent(_ context.Context, studentID string) ([]models.Course, error) {
	var out []models.Course
	for key := range m.enrollments {
		if key.studentID != studentID {
			continue
		}
		if course, ok := m.courses.courses[key.courseID]; ok {
			out = append(out, *course)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

type mockCodeRepo struct {
	rows   []*models.AttendanceCode
	nextID int64
}

func newMockCodeRepo() *mockCodeRepo {
	return &mockCodeRepo{}
}

func (m *mockCodeRepo) Insert(_ context.Context, code *models.AttendanceCode) error {
	m.nextID++
	code.ID = m.nextID
	copied := *code
	m.rows = append(m.rows, &copied)
	return nil
}

func (m *mockCodeRepo) GetLatest(_ context.Context, courseID, code string) (*models.AttendanceCode, error) {
	var latest *models.AttendanceCode
	for _, row := range m.rows {
		if row.CourseID != courseID || row.Code != code {
			continue
		}
		if latest == nil || row.CreatedAt.After(latest.CreatedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, apperrors.ErrInvalidCode
	}
	copied := *latest
	return &copied, nil
}

type mockAttendanceRepo struct {
	records []models.AttendanceRecord
	nextID  int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Exists(_ context.Context, studentID, courseID, code string) (bool, error) {
	for _, record := range m.records {
		if record.StudentID == studentID && record.CourseID == courseID && record.CodeUsed == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepo) Insert(_ context.Context, record *models.AttendanceRecord) error {
	for _, existing := range m.records {
		if existing.StudentID == record.StudentID && existing.CourseID == record.CourseID && existing.CodeUsed == record.CodeUsed {
			return apperrors.ErrDuplicateSubmission
		}
	}
	m.nextID++
	record.ID = m.nextID
	m.records = append(m.records, *record)
	return nil
}

func (m *mockAttendanceRepo) ListByCourseDate(_ context.Context, courseID, date string) ([]models.AttendanceRecord, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	var out []models.AttendanceRecord
	for _, record := range m.records {
		if record.CourseID == courseID && helpers.SameCalendarDay(record.SubmittedAt, day) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}
