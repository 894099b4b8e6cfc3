package attendance

import "github.com/jask/portaria/internal/identity"

// IsInside reports whether the partner's most recent event is an entry. This
// is the guard consulted before accepting a new swipe: an entry is rejected
// while inside, an exit while outside. No matching event means not inside.
// Two events at the exact same instant resolve to the later one in slice
// order, so a snapshot ordered by insertion still yields the latest swipe;
// same-second entry/exit pairs are routine with a second-truncated clock.
func IsInside(events []Event, partnerName string) bool {
	key := identity.Normalize(partnerName)
	if key == "" {
		return false
	}
	latest := -1
	for i := range events {
		if identity.Normalize(events[i].PartnerName) != key {
			continue
		}
		if latest == -1 || !events[i].Timestamp.Before(events[latest].Timestamp) {
			latest = i
		}
	}
	return latest != -1 && events[latest].Kind == Entry
}
