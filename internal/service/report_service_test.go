package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/edulink/edulink-backend/internal/model"
)

type fakeReportStore struct {
	students  []model.StudentReportRow
	employees []model.EmployeeReportRow
}

func (f *fakeReportStore) StudentRows(ctx context.Context, adminID int, classID *int, status string) ([]model.StudentReportRow, error) {
	return f.students, nil
}

func (f *fakeReportStore) EmployeeRows(ctx context.Context, adminID int, department, status string) ([]model.EmployeeReportRow, error) {
	return f.employees, nil
}

func TestExportStudentsCSV(t *testing.T) {
	store := &fakeReportStore{students: []model.StudentReportRow{
		{AdmissionNo: "A-001", Name: "Jo Student", Email: "jo@example.com", Phone: "123", GuardianName: "Pat", ClassName: "Grade 10", Section: "A", Status: "active"},
	}}
	svc := NewReportService(store, zerolog.Nop())

	var buf bytes.Buffer
	if err := svc.ExportStudents(context.Background(), &buf, FormatCSV, 1, nil, ""); err != nil {
		t.Fatalf("ExportStudents: %v", err)
	}

	want := "Admission No,Name,Email,Phone,Guardian,Class,Section,Status\n" +
		"A-001,Jo Student,jo@example.com,123,Pat,Grade 10,A,active\n"
	if buf.String() != want {
		t.Fatalf("csv mismatch:\ngot:  %q\nwant: %q", buf.String(), want)
	}
}

func TestExportEmployeesXLSX(t *testing.T) {
	store := &fakeReportStore{employees: []model.EmployeeReportRow{
		{Name: "Alice Teacher", Email: "alice@example.com", Phone: "456", Position: "Teacher", Department: "Science", Status: "active"},
	}}
	svc := NewReportService(store, zerolog.Nop())

	var buf bytes.Buffer
	if err := svc.ExportEmployees(context.Background(), &buf, FormatXLSX, 1, "", ""); err != nil {
		t.Fatalf("ExportEmployees: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Employees", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if header != "Name" {
		t.Fatalf("expected header cell %q, got %q", "Name", header)
	}
	name, err := f.GetCellValue("Employees", "A2")
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if name != "Alice Teacher" {
		t.Fatalf("expected row cell %q, got %q", "Alice Teacher", name)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewReportService(&fakeReportStore{}, zerolog.Nop())

	var buf bytes.Buffer
	if err := svc.ExportStudents(context.Background(), &buf, "pdf", 1, nil, ""); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
