package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/jask/portaria/internal/attendance"
	"github.com/jask/portaria/internal/config"
	"github.com/jask/portaria/internal/database"
	"github.com/jask/portaria/internal/database/repository"
	"github.com/jask/portaria/internal/service"
	"github.com/jask/portaria/internal/testdata"
)

const timeFormat = "02/01/2006 15:04"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Ledger.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	eventRepo := repository.NewEventRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)

	ingester := &service.IngestService{Events: eventRepo, Partners: partnerRepo}
	registrar := &service.RegisterService{Events: eventRepo, Partners: partnerRepo, Location: loc, DefaultCompany: cfg.Ledger.DefaultCompany}
	reporter := &service.ReportService{Events: eventRepo, Location: loc}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "import":
		runImport(ctx, ingester, loc, os.Args[2:])
	case "partners":
		runPartners(ctx, ingester, os.Args[2:])
	case "register":
		runRegister(ctx, registrar, os.Args[2:])
	case "inside":
		runInside(ctx, reporter, os.Args[2:])
	case "active":
		runActive(ctx, registrar)
	case "sessions":
		runSessions(ctx, reporter)
	case "daily":
		runDaily(ctx, reporter)
	case "report":
		runReport(ctx, reporter, os.Args[2:])
	case "seed":
		if err := testdata.Seed(ctx, testdata.Repos{Partners: partnerRepo, Events: eventRepo}); err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Println("sample data seeded")
	case "clear":
		if err := eventRepo.DeleteAll(ctx); err != nil {
			log.Fatalf("clear: %v", err)
		}
		fmt.Println("all events cleared")
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: portaria <command>

commands:
  import <ledger.csv>             import a raw attendance export
  partners <roster.csv> <company> import one company's partner roster
  register <name> [-exit]         record an entry (or exit) swipe
  inside <name>                   is this partner currently inside?
  active                          open sessions (who is inside now)
  sessions                        all stay sessions, newest first
  daily                           per-day work/rest summaries
  report [-monthly]               company reports, daily or monthly
  seed                            insert sample partners and swipes
  clear                           delete all stored events`)
}

func runImport(ctx context.Context, svc *service.IngestService, loc *time.Location, args []string) {
	if len(args) < 1 {
		log.Fatal("import: ledger csv path required")
	}
	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	res, err := svc.ImportLedgerCSV(ctx, f, loc)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	fmt.Printf("imported %d events, skipped %d rows\n", res.Imported, res.Skipped)
	for _, e := range res.Errors {
		log.Printf("warn: %v", e)
	}
}

func runPartners(ctx context.Context, svc *service.IngestService, args []string) {
	if len(args) < 2 {
		log.Fatal("partners: roster csv path and company required")
	}
	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	res, err := svc.ImportPartnersCSV(ctx, f, args[1])
	if err != nil {
		log.Fatalf("partners: %v", err)
	}
	fmt.Printf("imported %d partners, skipped %d rows\n", res.Imported, res.Skipped)
	for _, e := range res.Errors {
		log.Printf("warn: %v", e)
	}
}

func runRegister(ctx context.Context, svc *service.RegisterService, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	exit := fs.Bool("exit", false, "record an exit instead of an entry")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatal("register: partner name required")
	}
	name := fs.Arg(0)

	kind := attendance.Entry
	if *exit {
		kind = attendance.Exit
	}
	ev, err := svc.Register(ctx, name, kind)
	switch {
	case errors.Is(err, service.ErrAlreadyInside):
		fmt.Printf("%s is already inside; entry not recorded\n", name)
	case errors.Is(err, service.ErrNotInside):
		fmt.Printf("%s is not inside; exit not recorded\n", name)
	case err != nil:
		log.Fatalf("register: %v", err)
	default:
		fmt.Printf("recorded %s for %s (%s) at %s\n", ev.Kind, ev.PartnerName, ev.Company, ev.Timestamp.Format(timeFormat))
	}
}

func runInside(ctx context.Context, svc *service.ReportService, args []string) {
	if len(args) < 1 {
		log.Fatal("inside: partner name required")
	}
	inside, err := svc.IsInside(ctx, args[0])
	if err != nil {
		log.Fatalf("inside: %v", err)
	}
	if inside {
		fmt.Printf("%s is inside\n", args[0])
	} else {
		fmt.Printf("%s is not inside\n", args[0])
	}
}

func runActive(ctx context.Context, svc *service.RegisterService) {
	active, err := svc.ActiveNow(ctx)
	if err != nil {
		log.Fatalf("active: %v", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARTNER\tCOMPANY\tENTERED")
	for _, s := range active {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.PartnerName, s.Company, s.EntryTime.Format(timeFormat))
	}
	w.Flush()
}

func runSessions(ctx context.Context, svc *service.ReportService) {
	sessions, err := svc.Sessions(ctx)
	if err != nil {
		log.Fatalf("sessions: %v", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PARTNER\tCOMPANY\tENTRY\tEXIT\tMINUTES")
	for _, s := range sessions {
		exit, minutes := "-", "-"
		if s.ExitTime != nil {
			exit = s.ExitTime.Format(timeFormat)
			minutes = fmt.Sprintf("%d", s.DurationMinutes)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.PartnerName, s.Company, s.EntryTime.Format(timeFormat), exit, minutes)
	}
	w.Flush()
}

func runDaily(ctx context.Context, svc *service.ReportService) {
	summaries, err := svc.Daily(ctx)
	if err != nil {
		log.Fatalf("daily: %v", err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPARTNER\tCOMPANY\tWORK\tREST\tINSIDE")
	for _, s := range summaries {
		inside := ""
		if s.IsCurrentlyInside {
			inside = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Date, s.PartnerName, s.Company, formatMinutes(s.TotalWorkMinutes), formatMinutes(s.TotalRestMinutes), inside)
	}
	w.Flush()
}

func runReport(ctx context.Context, svc *service.ReportService, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	monthly := fs.Bool("monthly", false, "group periods by month instead of day")
	_ = fs.Parse(args)

	granularity := attendance.Daily
	if *monthly {
		granularity = attendance.Monthly
	}
	reports, err := svc.Company(ctx, granularity)
	if err != nil {
		log.Fatalf("report: %v", err)
	}
	for _, r := range reports {
		fmt.Printf("%s (%s)\n", r.Company, r.Period)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  PARTNER\tDAYS\tTOTAL")
		for _, p := range r.Partners {
			fmt.Fprintf(w, "  %s\t%d\t%s\n", p.Name, len(p.Days), formatMinutes(p.TotalPeriodWork))
		}
		w.Flush()
		fmt.Println()
	}
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%dh%02dm", m/60, m%60)
}
