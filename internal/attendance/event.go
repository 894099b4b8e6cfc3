// Package attendance reconstructs stay sessions, daily work/rest summaries
// and company reports from a snapshot of swipe events. Every function is a
// pure transform over the slice it is given: no I/O, no shared state, and a
// full recompute on every call, so concurrent runs over different snapshots
// are safe by construction.
package attendance

import "time"

// Kind distinguishes entry and exit swipes.
type Kind string

const (
	Entry Kind = "ENTRY"
	Exit  Kind = "EXIT"
)

// DefaultCompany labels events whose ledger row carries no company cell.
const DefaultCompany = "Parceiro"

// dateKeyFormat is the calendar-day bucket key (and the DAILY report period).
const dateKeyFormat = "02/01/2006"

// Event is one immutable swipe fact parsed from the ledger. Identity for all
// reconciliation is identity.Normalize(PartnerName), not ID: ledger ids are
// neither unique nor durable.
type Event struct {
	ID          string
	PartnerName string
	Company     string
	Kind        Kind
	Timestamp   time.Time
}

// StaySession pairs an entry with its matching exit. A nil ExitTime means the
// session is still open (partner presumed inside); DurationMinutes is only
// meaningful for closed sessions.
type StaySession struct {
	RecordID        string
	PartnerName     string
	Company         string
	EntryTime       time.Time
	ExitTime        *time.Time
	DurationMinutes int
}

// SessionView is one work block inside a single day.
type SessionView struct {
	Entry    time.Time
	Exit     *time.Time
	Duration int
}

// DailySummary consolidates one partner's day: closed-session work minutes,
// same-day rest between sessions, and whether the day ends with an unmatched
// entry.
type DailySummary struct {
	Date              string // DD/MM/YYYY
	PartnerName       string
	Company           string
	TotalWorkMinutes  int
	TotalRestMinutes  int
	Sessions          []SessionView
	IsCurrentlyInside bool
}

// DayView is a daily summary flattened into a report rollup.
type DayView struct {
	Date      string
	Sessions  []SessionView
	TotalWork int
}

// PartnerRollup accumulates one partner's days within a report period.
type PartnerRollup struct {
	Name            string
	Days            []DayView
	TotalPeriodWork int
}

// CompanyReport groups partner rollups for one company and period. Period is
// DD/MM/YYYY in daily mode and MM/YYYY in monthly mode.
type CompanyReport struct {
	Company  string
	Period   string
	Partners []PartnerRollup
}

// Granularity selects the report period bucket.
type Granularity int

const (
	Daily Granularity = iota
	Monthly
)
