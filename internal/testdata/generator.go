package testdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/portaria/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Partners *repository.PartnerRepo
	Events   *repository.EventRepo
}

var samplePartners = []struct {
	name    string
	company string
}{
	{"José Almeida", "Alfa Engenharia"},
	{"Maria Conceição", "Alfa Engenharia"},
	{"João Silva", "Beta Serviços"},
	{"Ana Souza", "Beta Serviços"},
	{"Pedro Santos", "Parceiro"},
}

// Seed creates a sample roster and a few days of swipes: a morning session,
// a lunch break, an afternoon session, and an occasional partner left inside.
func Seed(ctx context.Context, repos Repos) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, sp := range samplePartners {
		p := repository.Partner{ID: uuid.NewString(), Name: sp.name, Company: sp.company, Status: "Ativo"}
		if err := repos.Partners.Upsert(ctx, p); err != nil {
			return err
		}
	}

	now := time.Now()
	for day := 3; day >= 1; day-- {
		base := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.Local).AddDate(0, 0, -day)
		for _, sp := range samplePartners {
			jitter := time.Duration(rng.Intn(30)) * time.Minute
			entry := base.Add(jitter)
			swipes := []repository.Event{
				{LedgerID: seedID(), PartnerName: sp.name, Company: sp.company, Kind: "ENTRY", Timestamp: entry},
				{LedgerID: seedID(), PartnerName: sp.name, Company: sp.company, Kind: "EXIT", Timestamp: entry.Add(4 * time.Hour)},
				{LedgerID: seedID(), PartnerName: sp.name, Company: sp.company, Kind: "ENTRY", Timestamp: entry.Add(5 * time.Hour)},
			}
			// most days close out; one in five stays open
			if rng.Intn(5) != 0 {
				swipes = append(swipes, repository.Event{
					LedgerID: seedID(), PartnerName: sp.name, Company: sp.company, Kind: "EXIT", Timestamp: entry.Add(9 * time.Hour),
				})
			}
			for _, ev := range swipes {
				if err := repos.Events.Insert(ctx, ev); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedID() string {
	return "seed-" + uuid.NewString()[:8]
}
