package repository

import "time"

// Partner is a registered collaborator row.
type Partner struct {
	ID        string
	Name      string
	Company   string
	Status    string // "Ativo" or "Inativo"
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is a persisted attendance swipe row. LedgerID is the id carried by
// (or synthesized for) the originating ledger row; it is not a key.
type Event struct {
	Seq         int64
	LedgerID    string
	PartnerName string
	Company     string
	Kind        string // ENTRY or EXIT
	Timestamp   time.Time
	CreatedAt   time.Time
}
