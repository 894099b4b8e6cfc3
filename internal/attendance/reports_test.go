package attendance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompanyReports_MonthlyRollup(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "Maria", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-01 09:00"), // 60 min
		swipe(t, "Maria", "Alfa", Entry, "2024-03-15 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-15 10:00"), // 120 min
	}
	reports := CompanyReports(events, Monthly)
	require.Len(t, reports, 1)

	r := reports[0]
	require.Equal(t, "Alfa", r.Company)
	require.Equal(t, "03/2024", r.Period)
	require.Len(t, r.Partners, 1)
	require.Equal(t, 180, r.Partners[0].TotalPeriodWork)
	require.Len(t, r.Partners[0].Days, 2)
}

func TestCompanyReports_DailyKeepsDatePeriods(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "Maria", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-01 09:00"),
		swipe(t, "Maria", "Alfa", Entry, "2024-03-02 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-02 09:00"),
	}
	reports := CompanyReports(events, Daily)
	require.Len(t, reports, 2)
	// period descending
	require.Equal(t, "02/03/2024", reports[0].Period)
	require.Equal(t, "01/03/2024", reports[1].Period)
}

func TestCompanyReports_AccentDriftJoinsOneRollup(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "José Almeida", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "José Almeida", "Alfa", Exit, "2024-03-01 09:00"),
		swipe(t, "Jose Almeida", "Alfa", Entry, "2024-03-02 08:00"),
		swipe(t, "Jose Almeida", "Alfa", Exit, "2024-03-02 09:00"),
	}
	reports := CompanyReports(events, Monthly)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Partners, 1)
	require.Equal(t, 120, reports[0].Partners[0].TotalPeriodWork)
}

func TestCompanyReports_PartnersSortedLocaleAware(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "Bruno", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "Bruno", "Alfa", Exit, "2024-03-01 09:00"),
		swipe(t, "Ágata", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "Ágata", "Alfa", Exit, "2024-03-01 09:00"),
	}
	reports := CompanyReports(events, Daily)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Partners, 2)
	// byte order would put "Ágata" after "Bruno"; collation must not
	require.Equal(t, "Ágata", reports[0].Partners[0].Name)
	require.Equal(t, "Bruno", reports[0].Partners[1].Name)
}

func TestCompanyReports_CompaniesBucketedSeparately(t *testing.T) {
	t.Parallel()

	events := []Event{
		swipe(t, "Maria", "Alfa", Entry, "2024-03-01 08:00"),
		swipe(t, "Maria", "Alfa", Exit, "2024-03-01 09:00"),
		swipe(t, "João", "Beta", Entry, "2024-03-01 08:00"),
		swipe(t, "João", "Beta", Exit, "2024-03-01 09:00"),
	}
	reports := CompanyReports(events, Monthly)
	require.Len(t, reports, 2)

	companies := map[string]bool{}
	for _, r := range reports {
		companies[r.Company] = true
		require.Equal(t, "03/2024", r.Period)
	}
	require.True(t, companies["Alfa"])
	require.True(t, companies["Beta"])
}

func TestCompanyReports_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, CompanyReports(nil, Daily))
	require.Empty(t, CompanyReports([]Event{}, Monthly))
}
