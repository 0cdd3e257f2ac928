// Package services holds the domain logic between the HTTP controllers
// and the repositories.
//
// Services defined in this package:
//   - AuthService: registration and login for students, lecturers and admins
//   - AttendanceService: code issuance, redemption and reporting
//   - ExportService: spreadsheet rendering of attendance listings
//   - StudentService: student profile and enrollment management
//   - LecturerService: lecturer profile and course management
//   - AdminService: administrative user record management
package services
