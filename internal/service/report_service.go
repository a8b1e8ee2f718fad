package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/edulink/edulink-backend/internal/model"
)

// Export formats accepted by the report endpoints.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ReportStore is the read-only aggregation contract for tabular
// reports.
type ReportStore interface {
	StudentRows(ctx context.Context, adminID int, classID *int, status string) ([]model.StudentReportRow, error)
	EmployeeRows(ctx context.Context, adminID int, department, status string) ([]model.EmployeeReportRow, error)
}

// ReportService projects flattened student and employee reports and
// streams them as CSV or XLSX exports.
type ReportService struct {
	store ReportStore
	log   zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(store ReportStore, log zerolog.Logger) *ReportService {
	return &ReportService{
		store: store,
		log:   log.With().Str("component", "report_service").Logger(),
	}
}

// Students returns the flattened student report.
func (s *ReportService) Students(ctx context.Context, adminID int, classID *int, status string) ([]model.StudentReportRow, error) {
	return s.store.StudentRows(ctx, adminID, classID, status)
}

// Employees returns the flattened employee report.
func (s *ReportService) Employees(ctx context.Context, adminID int, department, status string) ([]model.EmployeeReportRow, error) {
	return s.store.EmployeeRows(ctx, adminID, department, status)
}

var studentReportHeader = []string{"Admission No", "Name", "Email", "Phone", "Guardian", "Class", "Section", "Status"}

func studentReportRecords(rows []model.StudentReportRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.AdmissionNo, r.Name, r.Email, r.Phone, r.GuardianName, r.ClassName, r.Section, r.Status})
	}
	return records
}

var employeeReportHeader = []string{"Name", "Email", "Phone", "Position", "Department", "Status"}

func employeeReportRecords(rows []model.EmployeeReportRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Name, r.Email, r.Phone, r.Position, r.Department, r.Status})
	}
	return records
}

// ExportStudents writes the student report to w in the given format.
func (s *ReportService) ExportStudents(ctx context.Context, w io.Writer, format string, adminID int, classID *int, status string) error {
	rows, err := s.store.StudentRows(ctx, adminID, classID, status)
	if err != nil {
		return err
	}
	return writeExport(w, format, "Students", studentReportHeader, studentReportRecords(rows))
}

// ExportEmployees writes the employee report to w in the given format.
func (s *ReportService) ExportEmployees(ctx context.Context, w io.Writer, format string, adminID int, department, status string) error {
	rows, err := s.store.EmployeeRows(ctx, adminID, department, status)
	if err != nil {
		return err
	}
	return writeExport(w, format, "Employees", employeeReportHeader, employeeReportRecords(rows))
}

func writeExport(w io.Writer, format, sheet string, header []string, records [][]string) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, header, records)
	case FormatXLSX:
		return writeXLSX(w, sheet, header, records)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, sheet string, header []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	writeRow := func(rowIdx int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return err
	}
	for i, record := range records {
		if err := writeRow(i+2, record); err != nil {
			return err
		}
	}

	return f.Write(w)
}
