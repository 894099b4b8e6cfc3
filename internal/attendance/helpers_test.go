package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// at parses "2006-01-02 15:04" in UTC for terse scenario tables.
func at(t *testing.T, ts string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", ts, time.UTC)
	require.NoError(t, err)
	return parsed
}

func swipe(t *testing.T, name, company string, kind Kind, ts string) Event {
	t.Helper()
	return Event{
		ID:          "ev-" + ts,
		PartnerName: name,
		Company:     company,
		Kind:        kind,
		Timestamp:   at(t, ts),
	}
}
