package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/rollcall/backend/internal/app/repositories"
	"github.com/rollcall/backend/internal/pkg/apperrors"
)

// ExcelContentType is the MIME type for xlsx workbooks
const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportColumn describes one spreadsheet column
type exportColumn struct {
	header string
	width  float64
}

// exportColumns mirrors the attendance listing projection
var exportColumns = []exportColumn{
	{header: "Student ID", width: 20},
	{header: "Student Name", width: 30},
	{header: "Submitted At", width: 30},
}

// ExportService renders attendance listings into downloadable workbooks.
type ExportService struct {
	attendanceRepo repositories.IAttendanceRepository
	logger         zerolog.Logger
}

// NewExportService creates a new ExportService
func NewExportService(attendanceRepo repositories.IAttendanceRepository, logger zerolog.Logger) *ExportService {
	return &ExportService{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// ExportAttendance renders the attendance listing for a course/date into
// an xlsx workbook. Returns the workbook bytes and a suggested filename;
// the controller sets the HTTP headers.
func (s *ExportService) ExportAttendance(ctx context.Context, courseID, date string) (*bytes.Buffer, string, error) {
	if strings.TrimSpace(courseID) == "" || strings.TrimSpace(date) == "" {
		return nil, "", apperrors.NewValidationError("course_id and date are required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, "", apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	records, err := s.attendanceRepo.ListByCourseDate(ctx, courseID, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Attendance"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, col := range exportColumns {
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, name, name, col.width)
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		f.SetCellStyle(sheetName, first, last, headerStyle)
	}

	for i, record := range records {
		row := i + 2
		values := []interface{}{
			record.StudentID,
			record.StudentName,
			record.SubmittedAt.Format(time.RFC3339),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error().Err(err).Str("courseId", courseID).Msg("Failed to write workbook")
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", courseID, date)
	return buf, filename, nil
}
