package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"

	"github.com/edulink/edulink-backend/internal/model"
)

// CertificateService renders student completion certificates as PDFs.
// Nothing is persisted; every render reads the current student row.
type CertificateService struct {
	students   StudentStore
	classes    ClassStore
	schoolName string
	fontPath   string
	log        zerolog.Logger
}

// NewCertificateService creates a new CertificateService. fontPath must
// point at a TTF file; rendering fails when it cannot be loaded.
func NewCertificateService(students StudentStore, classes ClassStore, schoolName, fontPath string, log zerolog.Logger) *CertificateService {
	return &CertificateService{
		students:   students,
		classes:    classes,
		schoolName: schoolName,
		fontPath:   fontPath,
		log:        log.With().Str("component", "certificate_service").Logger(),
	}
}

// RenderStudent writes a completion certificate for the student to w.
func (s *CertificateService) RenderStudent(ctx context.Context, w io.Writer, adminID, studentID int) error {
	student, err := s.students.GetByID(ctx, adminID, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	className := ""
	if student.ClassID != nil {
		class, err := s.classes.GetByID(ctx, adminID, *student.ClassID)
		if err == nil {
			className = class.ClassName + " " + class.Section
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("load class: %w", err)
		}
	}

	return s.render(w, student, className)
}

func (s *CertificateService) render(w io.Writer, student *model.Student, className string) error {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4Landscape})
	pdf.AddPage()

	if err := pdf.AddTTFFont("main", s.fontPath); err != nil {
		return fmt.Errorf("load certificate font: %w", err)
	}

	pageWidth := gopdf.PageSizeA4Landscape.W

	centered := func(size float64, y float64, text string) error {
		if err := pdf.SetFont("main", "", size); err != nil {
			return err
		}
		width, err := pdf.MeasureTextWidth(text)
		if err != nil {
			return err
		}
		pdf.SetX((pageWidth - width) / 2)
		pdf.SetY(y)
		return pdf.Cell(nil, text)
	}

	type line struct {
		size float64
		y    float64
		text string
	}
	lines := []line{
		{28, 90, s.schoolName},
		{20, 150, "Certificate of Completion"},
		{14, 210, "This is to certify that"},
		{24, 250, student.Name},
	}
	if className != "" {
		lines = append(lines, line{14, 300, fmt.Sprintf("of class %s", className)})
	}
	lines = append(lines,
		line{14, 340, fmt.Sprintf("has successfully completed the academic requirements. Admission No: %s", student.AdmissionNo)},
		line{12, 420, fmt.Sprintf("Issued on %s", time.Now().Format("2 January 2006"))},
	)

	for _, l := range lines {
		if err := centered(l.size, l.y, l.text); err != nil {
			return fmt.Errorf("render certificate: %w", err)
		}
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("write certificate: %w", err)
	}
	return nil
}
