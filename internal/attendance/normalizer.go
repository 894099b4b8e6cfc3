package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ledger column order, as produced by the external sheet transport.
const (
	colID = iota
	colEntryTS
	colName
	colStatus
	colExitTS
	colCompany
)

// Machine-readable layouts tried before the locale form.
var machineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseRows converts raw ledger rows into typed events. The ledger is
// hand-maintained, so malformed rows (too few cells, blank name, no parseable
// timestamp, unknown status) are skipped without error; partial success beats
// failing the whole batch. A leading header row is detected and dropped.
// Output order is unspecified; callers sort before relying on it.
func ParseRows(rows [][]string, loc *time.Location) []Event {
	if loc == nil {
		loc = time.Local
	}
	if len(rows) == 0 {
		return nil
	}
	start := 0
	if len(rows[0]) > 0 && strings.Contains(strings.ToLower(rows[0][colID]), "id") {
		start = 1
	}

	var events []Event
	for _, row := range rows[start:] {
		if len(row) <= colStatus {
			continue
		}
		name := strings.TrimSpace(row[colName])
		if name == "" {
			continue
		}

		status := strings.ToUpper(row[colStatus])
		var kind Kind
		switch {
		case strings.Contains(status, string(Entry)):
			kind = Entry
		case strings.Contains(status, string(Exit)):
			kind = Exit
		default:
			continue
		}

		// Exits are stamped from the exit column when it parses, falling
		// back to the entry column (older sheets only filled column 1).
		ts, ok := parseTimestamp(cell(row, colEntryTS), loc)
		if kind == Exit {
			if exitTS, exitOK := parseTimestamp(cell(row, colExitTS), loc); exitOK {
				ts, ok = exitTS, true
			}
		}
		if !ok {
			continue
		}

		company := strings.TrimSpace(cell(row, colCompany))
		if company == "" {
			company = DefaultCompany
		}
		id := strings.TrimSpace(row[colID])
		if id == "" {
			id = fmt.Sprintf("gen-%d", ts.UnixMilli())
		}

		events = append(events, Event{
			ID:          id,
			PartnerName: name,
			Company:     company,
			Kind:        kind,
			Timestamp:   ts,
		})
	}
	return events
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// parseTimestamp accepts machine-readable date-times and the locale form
// DD/MM/YYYY[ HH:MM[:SS]].
func parseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if clean == "" {
		return time.Time{}, false
	}
	for _, layout := range machineLayouts {
		if t, err := time.ParseInLocation(layout, clean, loc); err == nil {
			return t, true
		}
	}
	return parseLocaleTimestamp(clean, loc)
}

// parseLocaleTimestamp handles DD/MM/YYYY with an optional time part.
// Two-digit years are expanded to the 2000s; a malformed time part counts as
// midnight, matching the sheet's own lenient parsing.
func parseLocaleTimestamp(clean string, loc *time.Location) (time.Time, bool) {
	if !strings.Contains(clean, "/") {
		return time.Time{}, false
	}
	parts := strings.SplitN(clean, " ", 2)
	dateParts := strings.Split(parts[0], "/")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return time.Time{}, false
	}
	yearText := dateParts[2]
	if len(yearText) == 2 {
		yearText = "20" + yearText
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	var hour, minute, sec int
	if len(parts) == 2 {
		timeParts := strings.Split(strings.TrimSpace(parts[1]), ":")
		hour = atoiOrZero(timeParts, 0)
		minute = atoiOrZero(timeParts, 1)
		sec = atoiOrZero(timeParts, 2)
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc), true
}

func atoiOrZero(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
