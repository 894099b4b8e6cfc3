package attendance

import (
	"sort"
	"time"

	"github.com/jask/portaria/internal/identity"
)

// DailySummaries consolidates events into per-day, per-partner summaries,
// newest day first. Within a day, closed sessions accumulate work minutes and
// the gaps between an exit and the next entry accumulate rest minutes. Rest
// never crosses a day boundary: grouping by calendar date happens before
// replay, so an overnight gap is invisible to both days.
func DailySummaries(events []Event) []DailySummary {
	sorted := sortedByTime(events)

	groups := make(map[string][]Event)
	var order []string
	for _, ev := range sorted {
		key := ev.Timestamp.Format(dateKeyFormat) + "|" + identity.Normalize(ev.PartnerName) + "|" + ev.Company
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], ev)
	}

	out := make([]DailySummary, 0, len(order))
	for _, key := range order {
		out = append(out, summarizeDay(groups[key]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return parseDateKey(out[i].Date).After(parseDateKey(out[j].Date))
	})
	return out
}

// summarizeDay replays one partner's day in chronological order. events is
// never empty: a group only exists because at least one event fell into it.
func summarizeDay(events []Event) DailySummary {
	first := events[0]
	s := DailySummary{
		Date:        first.Timestamp.Format(dateKeyFormat),
		PartnerName: first.PartnerName,
		Company:     first.Company,
	}

	var currentEntry *Event
	var lastExit *time.Time
	for i := range events {
		ev := events[i]
		switch ev.Kind {
		case Entry:
			if lastExit != nil {
				if rest := roundMinutes(ev.Timestamp.Sub(*lastExit)); rest > 0 {
					s.TotalRestMinutes += rest
				}
			}
			currentEntry = &events[i]
		case Exit:
			if currentEntry == nil {
				// Spurious exit; same discard policy as Sessions.
				continue
			}
			duration := roundMinutes(ev.Timestamp.Sub(currentEntry.Timestamp))
			if duration >= 0 {
				exit := ev.Timestamp
				s.Sessions = append(s.Sessions, SessionView{Entry: currentEntry.Timestamp, Exit: &exit, Duration: duration})
				s.TotalWorkMinutes += duration
			}
			exitAt := ev.Timestamp
			lastExit = &exitAt
			currentEntry = nil
		}
	}

	if currentEntry != nil {
		s.Sessions = append(s.Sessions, SessionView{Entry: currentEntry.Timestamp, Duration: 0})
		s.IsCurrentlyInside = true
	}
	return s
}

// parseDateKey turns a DD/MM/YYYY key back into an instant for ordering;
// lexical comparison would misorder across months.
func parseDateKey(date string) time.Time {
	t, err := time.Parse(dateKeyFormat, date)
	if err != nil {
		return time.Time{}
	}
	return t
}
