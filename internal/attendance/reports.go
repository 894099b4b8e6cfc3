package attendance

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jask/portaria/internal/identity"
)

// CompanyReports folds daily summaries into (company, period) buckets for
// timesheet-style rendering. Period is the summary date in daily mode and
// MM/YYYY in monthly mode. Partner rollups are joined by normalized name, so
// accent or case drift in the ledger still lands on one line. Partners sort
// locale-aware ascending; reports sort by period descending.
func CompanyReports(events []Event, g Granularity) []CompanyReport {
	summaries := DailySummaries(events)

	buckets := make(map[string]*CompanyReport)
	var order []string
	for _, s := range summaries {
		period := s.Date
		if g == Monthly {
			period = s.Date[3:] // DD/MM/YYYY -> MM/YYYY
		}
		key := s.Company + "|" + period
		report, ok := buckets[key]
		if !ok {
			report = &CompanyReport{Company: s.Company, Period: period}
			buckets[key] = report
			order = append(order, key)
		}

		idx := -1
		for i := range report.Partners {
			if identity.Normalize(report.Partners[i].Name) == identity.Normalize(s.PartnerName) {
				idx = i
				break
			}
		}
		if idx == -1 {
			report.Partners = append(report.Partners, PartnerRollup{Name: s.PartnerName})
			idx = len(report.Partners) - 1
		}
		partner := &report.Partners[idx]
		partner.Days = append(partner.Days, DayView{Date: s.Date, Sessions: s.Sessions, TotalWork: s.TotalWorkMinutes})
		partner.TotalPeriodWork += s.TotalWorkMinutes
	}

	coll := collate.New(language.BrazilianPortuguese)
	out := make([]CompanyReport, 0, len(order))
	for _, key := range order {
		report := buckets[key]
		sort.SliceStable(report.Partners, func(i, j int) bool {
			return coll.CompareString(report.Partners[i].Name, report.Partners[j].Name) < 0
		})
		out = append(out, *report)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Period > out[j].Period
	})
	return out
}
