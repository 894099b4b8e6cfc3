package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/portaria/internal/attendance"
	"github.com/jask/portaria/internal/database"
	"github.com/jask/portaria/internal/database/repository"
	"github.com/jask/portaria/internal/identity"
)

// Guard rejections are business outcomes, not faults; callers match them
// with errors.Is and surface them to the operator.
var (
	ErrAlreadyInside = errors.New("partner is already inside")
	ErrNotInside     = errors.New("partner is not inside")
)

// RegisterService guards and appends entry/exit swipes against the latest
// snapshot. Presence is re-derived from the full event set on every call.
type RegisterService struct {
	Events         *repository.EventRepo
	Partners       *repository.PartnerRepo
	Location       *time.Location
	DefaultCompany string
}

// Register appends one swipe for the named partner after checking the
// presence guard: an entry is rejected while inside, an exit while outside.
func (s *RegisterService) Register(ctx context.Context, partnerName string, kind attendance.Kind) (repository.Event, error) {
	name := strings.TrimSpace(partnerName)
	if name == "" {
		return repository.Event{}, errors.New("partner name required")
	}

	rows, err := s.Events.List(ctx)
	if err != nil {
		return repository.Event{}, err
	}
	inside := attendance.IsInside(toEngineEvents(rows, s.loc()), name)
	if kind == attendance.Entry && inside {
		return repository.Event{}, ErrAlreadyInside
	}
	if kind == attendance.Exit && !inside {
		return repository.Event{}, ErrNotInside
	}

	company, err := s.resolveCompany(ctx, name)
	if err != nil {
		return repository.Event{}, err
	}

	ev := repository.Event{
		LedgerID:    newLedgerID(),
		PartnerName: name,
		Company:     company,
		Kind:        string(kind),
		Timestamp:   database.Now().In(s.loc()),
	}
	if err := s.Events.Insert(ctx, ev); err != nil {
		return repository.Event{}, err
	}
	return ev, nil
}

// ActiveNow returns the open sessions, i.e. who is inside right now.
func (s *RegisterService) ActiveNow(ctx context.Context) ([]attendance.StaySession, error) {
	rows, err := s.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	var active []attendance.StaySession
	for _, sess := range attendance.Sessions(toEngineEvents(rows, s.loc())) {
		if sess.ExitTime == nil {
			active = append(active, sess)
		}
	}
	return active, nil
}

// resolveCompany finds the registered partner closest to the typed name and
// uses their company; the gate operator types names freehand, so matching is
// fuzzy. Unknown names fall back to the default company label.
func (s *RegisterService) resolveCompany(ctx context.Context, name string) (string, error) {
	partners, err := s.Partners.List(ctx)
	if err != nil {
		return "", err
	}
	names := make([]string, len(partners))
	for i, p := range partners {
		names[i] = p.Name
	}
	match, ok := identity.ClosestMatch(name, names)
	if ok {
		key := identity.Normalize(match)
		for _, p := range partners {
			if identity.Normalize(p.Name) == key {
				return p.Company, nil
			}
		}
	}
	if s.DefaultCompany != "" {
		return s.DefaultCompany, nil
	}
	return attendance.DefaultCompany, nil
}

func (s *RegisterService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func newLedgerID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ID-" + strings.ToUpper(raw[:8])
}
