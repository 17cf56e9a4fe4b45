// internal/service/activity.go
package service

import (
	"context"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/clock"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/google/uuid"
)

// ActivityService computes time-windowed activity counts and the owner by
// call-type matrix.
//
// Window semantics are deliberately mixed: today, week, and month are
// calendar-aligned (exact date, ISO week, calendar month) while the rolling
// windows look back a fixed number of days from now. Both families are
// reported side by side.
type ActivityService struct {
	scope   *scope.Service
	reports repository.ReportRepositoryIface
	clock   clock.Clock
}

func NewActivityService(scopeSvc *scope.Service, reports repository.ReportRepositoryIface, clk clock.Clock) *ActivityService {
	return &ActivityService{
		scope:   scopeSvc,
		reports: reports,
		clock:   clk,
	}
}

type WindowCounts struct {
	Total       int64 `json:"total"`
	FieldVisits int64 `json:"field_visits"`
}

type WeekCounts struct {
	Number int `json:"number"`
	WindowCounts
}

type TodayCounts struct {
	WindowCounts
	OwnerAttributed    int64 `json:"owner_attributed"`
	EmployeeAttributed int64 `json:"employee_attributed"`
}

// DashboardSummary is the read-only context for the home dashboard.
type DashboardSummary struct {
	Date           time.Time       `json:"date"`
	Today          TodayCounts     `json:"today"`
	ThisWeek       WeekCounts      `json:"this_week"`
	LastWeek       WeekCounts      `json:"last_week"`
	ThisMonth      WindowCounts    `json:"this_month"`
	RollingWeek    WindowCounts    `json:"rolling_week"`
	RollingMonth   WindowCounts    `json:"rolling_month"`
	RollingQuarter WindowCounts    `json:"rolling_quarter"`
	RollingYear    WindowCounts    `json:"rolling_year"`
	Owners         []*model.Owner  `json:"owners"`
	Offices        []*model.Office `json:"offices"`
	RecentReports  []*model.Report `json:"recent_reports"`
}

func (s *ActivityService) Summary(ctx context.Context, ac scope.AuthContext) (*DashboardSummary, error) {
	owners, err := s.scope.Owners(ctx, ac)
	if err != nil {
		return nil, err
	}
	offices, err := s.scope.Offices(ctx, ac)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	summary := &DashboardSummary{
		Date:    dateOf(now),
		Owners:  owners,
		Offices: offices,
	}
	summary.ThisWeek.Number = isoWeekNumber(now)
	summary.LastWeek.Number = isoWeekNumber(now.AddDate(0, 0, -7))

	base, ok, err := s.scope.ReportFilter(ctx, ac)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Nothing visible; every window stays at zero.
		return summary, nil
	}

	recent := base
	recent.Limit = 5
	if summary.RecentReports, err = s.reports.Find(ctx, recent); err != nil {
		return nil, err
	}

	dayStart := dateOf(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	today, err := s.windowCounts(ctx, base, &dayStart, &dayEnd)
	if err != nil {
		return nil, err
	}
	summary.Today.WindowCounts = today

	ownerOnly := base
	ownerOnly.OfficeIDs = nil
	ownerOnly.Start = &dayStart
	ownerOnly.Before = &dayEnd
	if summary.Today.OwnerAttributed, err = s.reports.Count(ctx, ownerOnly); err != nil {
		return nil, err
	}

	employeeOnly := base
	employeeOnly.OwnerIDs = nil
	employeeOnly.Start = &dayStart
	employeeOnly.Before = &dayEnd
	if len(employeeOnly.OfficeIDs) > 0 {
		if summary.Today.EmployeeAttributed, err = s.reports.Count(ctx, employeeOnly); err != nil {
			return nil, err
		}
	}

	weekStart := isoWeekStart(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	if summary.ThisWeek.WindowCounts, err = s.windowCounts(ctx, base, &weekStart, &weekEnd); err != nil {
		return nil, err
	}

	lastWeekStart := weekStart.AddDate(0, 0, -7)
	if summary.LastWeek.WindowCounts, err = s.windowCounts(ctx, base, &lastWeekStart, &weekStart); err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	if summary.ThisMonth, err = s.windowCounts(ctx, base, &monthStart, &monthEnd); err != nil {
		return nil, err
	}

	rollings := []struct {
		days int
		dst  *WindowCounts
	}{
		{7, &summary.RollingWeek},
		{30, &summary.RollingMonth},
		{90, &summary.RollingQuarter},
		{365, &summary.RollingYear},
	}
	for _, rolling := range rollings {
		since := now.AddDate(0, 0, -rolling.days)
		counts, err := s.windowCounts(ctx, base, &since, nil)
		if err != nil {
			return nil, err
		}
		*rolling.dst = counts
	}

	return summary, nil
}

func (s *ActivityService) windowCounts(ctx context.Context, base repository.ReportFilter, start, before *time.Time) (WindowCounts, error) {
	f := base
	f.Start = start
	f.Before = before

	total, err := s.reports.Count(ctx, f)
	if err != nil {
		return WindowCounts{}, err
	}

	fov := model.CallFOV
	f.CallType = &fov
	fieldVisits, err := s.reports.Count(ctx, f)
	if err != nil {
		return WindowCounts{}, err
	}

	return WindowCounts{Total: total, FieldVisits: fieldVisits}, nil
}

type CallTypeColumn struct {
	Code  model.CallType `json:"code"`
	Label string         `json:"label"`
}

type MatrixRow struct {
	OwnerID   uuid.UUID                `json:"owner_id"`
	OwnerName string                   `json:"owner_name"`
	Counts    map[model.CallType]int64 `json:"counts"`
	Total     int64                    `json:"total"`
}

// ActivityMatrix cross-tabulates the requester's owners against the five
// call-type codes. Owners with no reports keep a zero-filled row.
type ActivityMatrix struct {
	ShowTable         bool                     `json:"show_table"`
	Columns           []CallTypeColumn         `json:"columns"`
	Rows              []MatrixRow              `json:"rows"`
	TotalsByType      map[model.CallType]int64 `json:"totals_by_type"`
	GrandTotal        int64                    `json:"grand_total"`
	FieldVisitReports []*model.Report          `json:"field_visit_reports"`
}

// Matrix builds the owner by call-type table over the requester's authored
// reports. Date bounds are inclusive whole days; the table is only marked
// for display when at least one bound was supplied.
func (s *ActivityService) Matrix(ctx context.Context, ac scope.AuthContext, startDate, endDate *time.Time) (*ActivityMatrix, error) {
	owners, err := s.scope.Owners(ctx, ac)
	if err != nil {
		return nil, err
	}

	f := repository.ReportFilter{AuthorID: &ac.UserID}
	if startDate != nil {
		start := dateOf(*startDate)
		f.Start = &start
	}
	if endDate != nil {
		// Inclusive end date: anything before the next midnight counts.
		before := dateOf(*endDate).AddDate(0, 0, 1)
		f.Before = &before
	}

	cells, err := s.reports.CountByOwnerAndType(ctx, f)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]map[model.CallType]int64, len(owners))
	for _, owner := range owners {
		row := make(map[model.CallType]int64, len(model.CallTypes()))
		for _, callType := range model.CallTypes() {
			row[callType] = 0
		}
		counts[owner.ID] = row
	}
	for _, cell := range cells {
		row, ok := counts[cell.OwnerID]
		if !ok {
			// Aggregated owner outside the requester's set; not a row.
			continue
		}
		row[cell.CallType] = cell.Count
	}

	matrix := &ActivityMatrix{
		ShowTable:    startDate != nil || endDate != nil,
		TotalsByType: make(map[model.CallType]int64, len(model.CallTypes())),
	}
	for _, callType := range model.CallTypes() {
		matrix.Columns = append(matrix.Columns, CallTypeColumn{Code: callType, Label: callType.Label()})
		matrix.TotalsByType[callType] = 0
	}
	for _, owner := range owners {
		row := MatrixRow{
			OwnerID:   owner.ID,
			OwnerName: owner.Name,
			Counts:    counts[owner.ID],
		}
		for _, callType := range model.CallTypes() {
			row.Total += row.Counts[callType]
			matrix.TotalsByType[callType] += row.Counts[callType]
		}
		matrix.GrandTotal += row.Total
		matrix.Rows = append(matrix.Rows, row)
	}

	fov := model.CallFOV
	f.CallType = &fov
	if matrix.FieldVisitReports, err = s.reports.Find(ctx, f); err != nil {
		return nil, err
	}

	return matrix, nil
}

// isoWeekStart returns midnight of the Monday beginning t's ISO week.
func isoWeekStart(t time.Time) time.Time {
	day := dateOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func isoWeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
