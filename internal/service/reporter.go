package service

import (
	"context"
	"time"

	"github.com/jask/portaria/internal/attendance"
	"github.com/jask/portaria/internal/database/repository"
)

// ReportService answers the read-side queries. Each call loads the full
// snapshot and recomputes the derived view from scratch; when two loads race,
// whichever result the caller adopts last wins.
type ReportService struct {
	Events   *repository.EventRepo
	Location *time.Location
}

// IsInside answers the presence query for one partner.
func (s *ReportService) IsInside(ctx context.Context, partnerName string) (bool, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return attendance.IsInside(events, partnerName), nil
}

// Sessions returns all stay sessions, newest entry first.
func (s *ReportService) Sessions(ctx context.Context) ([]attendance.StaySession, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return attendance.Sessions(events), nil
}

// Daily returns per-day work/rest summaries, newest day first.
func (s *ReportService) Daily(ctx context.Context) ([]attendance.DailySummary, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return attendance.DailySummaries(events), nil
}

// Company returns company/period rollups at the given granularity.
func (s *ReportService) Company(ctx context.Context, g attendance.Granularity) ([]attendance.CompanyReport, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return attendance.CompanyReports(events, g), nil
}

func (s *ReportService) snapshot(ctx context.Context) ([]attendance.Event, error) {
	rows, err := s.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEngineEvents(rows, s.loc()), nil
}

func (s *ReportService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// toEngineEvents maps stored rows into engine events, shifting timestamps
// into the reporting timezone so calendar-day grouping lands on local days.
func toEngineEvents(rows []repository.Event, loc *time.Location) []attendance.Event {
	out := make([]attendance.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.Event{
			ID:          r.LedgerID,
			PartnerName: r.PartnerName,
			Company:     r.Company,
			Kind:        attendance.Kind(r.Kind),
			Timestamp:   r.Timestamp.In(loc),
		})
	}
	return out
}
