package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/jask/portaria/internal/identity"
)

// Sessions pairs entry and exit events into stay sessions, newest entry
// first. Replay runs chronologically with one open slot per partner: a second
// entry supersedes the first, an exit with no open entry is a spurious ledger
// row and is dropped. Whatever is still open at the end becomes an open
// session.
func Sessions(events []Event) []StaySession {
	sorted := sortedByTime(events)
	open := make(map[string]Event)

	var out []StaySession
	for _, ev := range sorted {
		key := identity.Normalize(ev.PartnerName)
		switch ev.Kind {
		case Entry:
			open[key] = ev
		case Exit:
			entry, ok := open[key]
			if !ok {
				continue
			}
			exit := ev.Timestamp
			out = append(out, StaySession{
				RecordID:        entry.ID,
				PartnerName:     entry.PartnerName,
				Company:         entry.Company,
				EntryTime:       entry.Timestamp,
				ExitTime:        &exit,
				DurationMinutes: roundMinutes(exit.Sub(entry.Timestamp)),
			})
			delete(open, key)
		}
	}

	for _, entry := range open {
		out = append(out, StaySession{
			RecordID:    entry.ID,
			PartnerName: entry.PartnerName,
			Company:     entry.Company,
			EntryTime:   entry.Timestamp,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EntryTime.Equal(out[j].EntryTime) {
			return out[i].EntryTime.After(out[j].EntryTime)
		}
		return out[i].PartnerName < out[j].PartnerName
	})
	return out
}

// sortedByTime returns a chronologically ascending copy; the input slice is
// never reordered in place.
func sortedByTime(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
