package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/store"
)

// ReportService aggregates placement data across all student profiles
type ReportService struct {
	store  store.Store
	logger zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(store store.Store, logger zerolog.Logger) *ReportService {
	return &ReportService{
		store:  store,
		logger: logger,
	}
}

// PlacementReport builds the aggregate placement view. A profile counts
// as placed when its status is anything other than the default.
func (s *ReportService) PlacementReport(ctx context.Context) (*dto.PlacementReport, error) {
	profiles, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.PlacementReport{TotalStudents: len(profiles)}

	type bucket struct {
		students int
		placed   int
		gpaSum   float64
	}
	byDept := make(map[string]*bucket)

	for _, profile := range profiles {
		dept := strings.TrimSpace(profile.Department)
		if dept == "" {
			dept = "Unassigned"
		}

		b, ok := byDept[dept]
		if !ok {
			b = &bucket{}
			byDept[dept] = b
		}

		b.students++
		b.gpaSum += profile.GPA

		if isPlaced(profile) {
			b.placed++
			report.Placed++
		}
	}
	report.NotPlaced = report.TotalStudents - report.Placed

	for dept, b := range byDept {
		report.Departments = append(report.Departments, dto.DepartmentPlacementStats{
			Department: dept,
			Students:   b.students,
			Placed:     b.placed,
			AverageGPA: b.gpaSum / float64(b.students),
		})
	}
	sort.Slice(report.Departments, func(i, j int) bool {
		return report.Departments[i].Department < report.Departments[j].Department
	})

	return report, nil
}

// WritePlacementCSV streams the placement report as CSV
func (s *ReportService) WritePlacementCSV(ctx context.Context, w io.Writer) error {
	report, err := s.PlacementReport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"department", "students", "placed", "not_placed", "average_gpa"}); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, dept := range report.Departments {
		record := []string{
			dept.Department,
			strconv.Itoa(dept.Students),
			strconv.Itoa(dept.Placed),
			strconv.Itoa(dept.Students - dept.Placed),
			strconv.FormatFloat(dept.AverageGPA, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func isPlaced(profile *models.StudentProfile) bool {
	status := strings.TrimSpace(profile.PlacementStatus)
	return status != "" && status != models.PlacementStatusNotPlaced
}
