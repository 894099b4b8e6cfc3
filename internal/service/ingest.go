package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/portaria/internal/attendance"
	"github.com/jask/portaria/internal/database/repository"
)

// IngestService imports ledger and partner CSV exports into the local store.
type IngestService struct {
	Events   *repository.EventRepo
	Partners *repository.PartnerRepo
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportLedgerCSV reads a raw attendance export (columns: id, entry
// timestamp, name, status, exit timestamp, company) and stores every event
// the normalizer accepts. Rows the normalizer rejects count as skipped, not
// as errors; the ledger is hand-maintained and partial success is the point.
func (s *IngestService) ImportLedgerCSV(ctx context.Context, r io.Reader, loc *time.Location) (IngestResult, error) {
	if loc == nil {
		loc = time.Local
	}
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	var rows [][]string
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		rows = append(rows, rec)
	}

	events := attendance.ParseRows(rows, loc)
	res.Skipped = len(rows) - len(events)
	batch := make([]repository.Event, 0, len(events))
	for _, ev := range events {
		batch = append(batch, repository.Event{
			LedgerID:    ev.ID,
			PartnerName: ev.PartnerName,
			Company:     ev.Company,
			Kind:        string(ev.Kind),
			Timestamp:   ev.Timestamp,
		})
	}
	// one transaction for the whole batch: a failed import leaves no
	// half-written snapshot behind
	if err := s.Events.InsertBatch(ctx, batch); err != nil {
		return res, fmt.Errorf("import events: %w", err)
	}
	res.Imported = len(batch)
	return res, nil
}

var partnersHeaderRe = regexp.MustCompile(`(?i)colaborador|nome`)

// ImportPartnersCSV reads one company's partner roster (name, status). Names
// shorter than two characters are dropped; status defaults to "Ativo".
func (s *IngestService) ImportPartnersCSV(ctx context.Context, r io.Reader, company string) (IngestResult, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		company = attendance.DefaultCompany
	}
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && len(rec) > 0 && partnersHeaderRe.MatchString(rec[0]) {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(first(rec), `"`, ""))
		if len(name) < 2 {
			res.Skipped++
			continue
		}
		status := "Ativo"
		if len(rec) > 1 {
			if st := strings.TrimSpace(strings.ReplaceAll(rec[1], `"`, "")); st != "" {
				status = st
			}
		}
		p := repository.Partner{
			ID:      uuid.NewString(),
			Name:    name,
			Company: company,
			Status:  status,
		}
		if err := s.Partners.Upsert(ctx, p); err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d upsert: %w", line, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

func first(rec []string) string {
	if len(rec) == 0 {
		return ""
	}
	return rec[0]
}
