package attendance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInside_GuardFollowsLatestEvent(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "José Almeida", "Alfa", Entry, "2024-03-10 08:00"),
	}
	require.True(t, IsInside(events, "José Almeida"))

	events = append(events, swipe(t, "José Almeida", "Alfa", Exit, "2024-03-10 12:00"))
	require.False(t, IsInside(events, "José Almeida"))
}

func TestIsInside_MatchesNormalizedName(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "José Almeida", "Alfa", Entry, "2024-03-10 08:00"),
	}
	require.True(t, IsInside(events, "  jose almeida "))
	require.False(t, IsInside(events, "Maria"))
}

func TestIsInside_OrderIndependent(t *testing.T) {
	t.Parallel()

	// exit delivered before entry; the latest timestamp still decides
	events := []Event{
		swipe(t, "Maria", "Alfa", Exit, "2024-03-10 12:00"),
		swipe(t, "Maria", "Alfa", Entry, "2024-03-10 08:00"),
	}
	require.False(t, IsInside(events, "Maria"))
}

func TestIsInside_SameInstantLaterEventWins(t *testing.T) {
	t.Parallel()

	// a second-truncated clock stamps quick entry/exit pairs identically;
	// the later event in slice order must decide
	events := []Event{
		swipe(t, "Maria", "Alfa", Entry, "2024-03-10 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-10 08:00"),
	}
	require.False(t, IsInside(events, "Maria"))

	events = append(events, swipe(t, "Maria", "Alfa", Entry, "2024-03-10 08:00"))
	require.True(t, IsInside(events, "Maria"))
}

func TestIsInside_NoEvents(t *testing.T) {
	t.Parallel()

	require.False(t, IsInside(nil, "Maria"))
	require.False(t, IsInside([]Event{}, ""))
}
