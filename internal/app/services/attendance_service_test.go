package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	appauth "github.com/rollcall/backend/internal/app/auth"
	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

type attendanceFixture struct {
	svc        *AttendanceService
	users      *mockUserRepo
	courses    *mockCourseRepo
	codes      *mockCodeRepo
	attendance *mockAttendanceRepo
	clock      time.Time
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()

	users := newMockUserRepo()
	courses := newMockCourseRepo()
	codes := newMockCodeRepo()
	attendance := newMockAttendanceRepo()

	lecturerID := "L1001"
	users.users["L1001"] = &models.User{ID: "L1001", Name: "Dr. Kim", Role: models.RoleLecturer}
	users.users["S2021001"] = &models.User{ID: "S2021001", Name: "Ada Lovelace", Role: models.RoleStudent}
	courses.courses["CS101"] = &models.Course{CourseID: "CS101", CourseName: "Intro to Computing", LecturerID: &lecturerID}

	authz := appauth.NewAuthorizationService(users, courses)
	svc := NewAttendanceService(codes, attendance, users, authz, 6, 15*time.Minute, zerolog.Nop())

	f := &attendanceFixture{
		svc:        svc,
		users:      users,
		courses:    courses,
		codes:      codes,
		attendance: attendance,
		clock:      time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	}
	svc.now = func() time.Time { return f.clock }
	return f
}

func TestIssueCodeValidity(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	if len(code.Code) != 6 {
		t.Errorf("code length = %d, want 6", len(code.Code))
	}
	for _, r := range code.Code {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			t.Errorf("code %q contains unexpected character %q", code.Code, r)
		}
	}

	wantExpiry := f.clock.Add(15 * time.Minute)
	if !code.ValidUntil.Equal(wantExpiry) {
		t.Errorf("ValidUntil = %v, want %v", code.ValidUntil, wantExpiry)
	}
}

func TestIssueCodeOwnership(t *testing.T) {
	f := newAttendanceFixture(t)
	f.users.users["L2002"] = &models.User{ID: "L2002", Name: "Dr. Park", Role: models.RoleLecturer}

	_, err := f.svc.IssueCode(context.Background(), "L2002", "CS101")
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("IssueCode by non-owner = %v, want ErrPermissionDenied", err)
	}

	_, err = f.svc.IssueCode(context.Background(), "L1001", "MISSING")
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("IssueCode for missing course = %v, want ErrCourseNotFound", err)
	}
}

func TestSubmitAttendanceHappyPath(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", code.Code); err != nil {
		t.Fatalf("SubmitAttendance: %v", err)
	}

	if len(f.attendance.records) != 1 {
		t.Fatalf("records = %d, want 1", len(f.attendance.records))
	}
	record := f.attendance.records[0]
	if record.StudentName != "Ada Lovelace" {
		t.Errorf("StudentName = %q, want snapshot of student name", record.StudentName)
	}
	if record.CodeUsed != code.Code {
		t.Errorf("CodeUsed = %q, want %q", record.CodeUsed, code.Code)
	}
}

func TestSubmitAttendanceExpiryBoundary(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	// Exactly at valid_until the code still redeems.
	f.clock = code.ValidUntil
	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", code.Code); err != nil {
		t.Fatalf("SubmitAttendance at expiry instant: %v", err)
	}

	f.users.users["S2021002"] = &models.User{ID: "S2021002", Name: "Grace Hopper", Role: models.RoleStudent}
	f.clock = code.ValidUntil.Add(time.Nanosecond)
	err = f.svc.SubmitAttendance(context.Background(), "S2021002", "CS101", code.Code)
	if !errors.Is(err, apperrors.ErrCodeExpired) {
		t.Fatalf("SubmitAttendance after expiry = %v, want ErrCodeExpired", err)
	}
}

func TestSubmitAttendanceInvalidCode(t *testing.T) {
	f := newAttendanceFixture(t)

	err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", "NOPE99")
	if !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Fatalf("SubmitAttendance with unknown code = %v, want ErrInvalidCode", err)
	}
}

func TestSubmitAttendanceUnknownStudent(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	err = f.svc.SubmitAttendance(context.Background(), "GHOST1", "CS101", code.Code)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("SubmitAttendance by unknown student = %v, want ErrStudentNotFound", err)
	}

	// A lecturer ID cannot redeem codes either.
	err = f.svc.SubmitAttendance(context.Background(), "L1001", "CS101", code.Code)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("SubmitAttendance by lecturer = %v, want ErrStudentNotFound", err)
	}
}

func TestSubmitAttendanceDuplicate(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", code.Code); err != nil {
		t.Fatalf("first SubmitAttendance: %v", err)
	}

	err = f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", code.Code)
	if !errors.Is(err, apperrors.ErrDuplicateSubmission) {
		t.Fatalf("second SubmitAttendance = %v, want ErrDuplicateSubmission", err)
	}
	if len(f.attendance.records) != 1 {
		t.Errorf("records = %d, want 1 after duplicate rejection", len(f.attendance.records))
	}
}

func TestSubmitAttendanceTwoCodesSameDay(t *testing.T) {
	f := newAttendanceFixture(t)

	first, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}
	f.clock = f.clock.Add(time.Minute)
	second, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}
	if first.Code == second.Code {
		t.Skip("generated codes collided, scope of this test needs distinct codes")
	}

	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", first.Code); err != nil {
		t.Fatalf("submit first code: %v", err)
	}
	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", second.Code); err != nil {
		t.Fatalf("submit second code same day: %v", err)
	}
	if len(f.attendance.records) != 2 {
		t.Errorf("records = %d, want 2 for distinct codes", len(f.attendance.records))
	}
}

func TestListAttendance(t *testing.T) {
	f := newAttendanceFixture(t)

	code, err := f.svc.IssueCode(context.Background(), "L1001", "CS101")
	if err != nil {
		t.Fatalf("IssueCode: %v", err)
	}

	f.users.users["S2021002"] = &models.User{ID: "S2021002", Name: "Grace Hopper", Role: models.RoleStudent}

	if err := f.svc.SubmitAttendance(context.Background(), "S2021002", "CS101", code.Code); err != nil {
		t.Fatalf("SubmitAttendance: %v", err)
	}
	f.clock = f.clock.Add(2 * time.Minute)
	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", code.Code); err != nil {
		t.Fatalf("SubmitAttendance: %v", err)
	}

	resp, err := f.svc.ListAttendance(context.Background(), "CS101", "2026-03-09")
	if err != nil {
		t.Fatalf("ListAttendance: %v", err)
	}
	if resp.Total != 2 || len(resp.Rows) != 2 {
		t.Fatalf("Total = %d, rows = %d, want 2/2", resp.Total, len(resp.Rows))
	}
	if resp.Rows[0].StudentID != "S2021002" || resp.Rows[1].StudentID != "S2021001" {
		t.Errorf("rows out of submission order: %v", resp.Rows)
	}

	empty, err := f.svc.ListAttendance(context.Background(), "CS101", "2026-03-10")
	if err != nil {
		t.Fatalf("ListAttendance other day: %v", err)
	}
	if empty.Total != 0 || len(empty.Rows) != 0 {
		t.Errorf("other-day listing = %d rows, want 0", len(empty.Rows))
	}
}

func TestListAttendanceBadDate(t *testing.T) {
	f := newAttendanceFixture(t)

	if _, err := f.svc.ListAttendance(context.Background(), "CS101", "09-03-2026"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("ListAttendance with bad date = %v, want ErrValidationFailed", err)
	}
	if _, err := f.svc.ListAttendance(context.Background(), "CS101", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("ListAttendance with empty date = %v, want ErrValidationFailed", err)
	}
}

func TestLatestCodeRowWins(t *testing.T) {
	f := newAttendanceFixture(t)

	// Two rows with the same code value: the newer expiry governs.
	stale := &models.AttendanceCode{
		CourseID:   "CS101",
		Code:       "AB12CD",
		CreatedBy:  "L1001",
		CreatedAt:  f.clock.Add(-2 * time.Hour),
		ValidUntil: f.clock.Add(-105 * time.Minute),
	}
	fresh := &models.AttendanceCode{
		CourseID:   "CS101",
		Code:       "AB12CD",
		CreatedBy:  "L1001",
		CreatedAt:  f.clock.Add(-time.Minute),
		ValidUntil: f.clock.Add(14 * time.Minute),
	}
	if err := f.codes.Insert(context.Background(), stale); err != nil {
		t.Fatal(err)
	}
	if err := f.codes.Insert(context.Background(), fresh); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.SubmitAttendance(context.Background(), "S2021001", "CS101", "AB12CD"); err != nil {
		t.Fatalf("SubmitAttendance against reissued code = %v, want success", err)
	}
}
