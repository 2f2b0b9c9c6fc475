package home

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// reportService implements domain.ReportService.
type reportService struct {
	reports   domain.ReportRepository
	settings  domain.SettingRepository
	snapshots domain.SnapshotRepository
	logger    *slog.Logger
	now       func() time.Time

	// last is the most recent Overview, which detail dialogs read from.
	lastMu sync.RWMutex
	last   *domain.Overview

	// stored mirrors the snapshot store once known, so unchanged reports
	// are not written again. saveMu also serialises writes to the store.
	saveMu sync.Mutex
	stored []domain.CreditReport
	known  bool
}

// NewReportService creates a ReportService. snapshots may be nil, in which
// case backend failures degrade to an empty report.
func NewReportService(
	reports domain.ReportRepository,
	settings domain.SettingRepository,
	snapshots domain.SnapshotRepository,
	logger *slog.Logger,
) domain.ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{
		reports:   reports,
		settings:  settings,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Overview loads the credit report and the required credits concurrently.
// Neither branch fails the other: a report failure falls back to the last
// snapshot and a threshold failure keeps domain.DefaultRequiredCredits.
func (s *reportService) Overview(ctx context.Context) *domain.Overview {
	var (
		records  []domain.CreditReport
		fetchErr error
		required = domain.DefaultRequiredCredits
	)

	var g errgroup.Group
	g.Go(func() error {
		records, fetchErr = s.reports.CreditReports(ctx)
		if fetchErr != nil {
			s.logger.WarnContext(ctx, "fetch credit report failed", slog.Any("error", fetchErr))
		}
		return nil
	})
	g.Go(func() error {
		required = s.requiredCredits(ctx)
		return nil
	})
	_ = g.Wait()

	ov := &domain.Overview{RequiredCredits: required}
	if fetchErr == nil {
		ov.Records = records
		ov.FetchedAt = s.now()
		s.saveSnapshot(ctx, records)
	} else {
		ov.Stale = true
		ov.Records, ov.FetchedAt = s.loadSnapshot(ctx)
	}
	if ov.Records == nil {
		ov.Records = []domain.CreditReport{}
	}

	s.lastMu.Lock()
	s.last = ov
	s.lastMu.Unlock()
	return ov
}

// Record returns the report of one student along with the required credits.
// It reads the records of the last Overview, the ones the page on screen was
// rendered from, and loads a new Overview only when none is held or the
// student is not in it.
func (s *reportService) Record(ctx context.Context, studentID uint) (*domain.CreditReport, int, error) {
	s.lastMu.RLock()
	ov := s.last
	s.lastMu.RUnlock()

	if ov != nil {
		if rec, ok := findRecord(ov.Records, studentID); ok {
			return rec, ov.RequiredCredits, nil
		}
	}

	ov = s.Overview(ctx)
	if rec, ok := findRecord(ov.Records, studentID); ok {
		return rec, ov.RequiredCredits, nil
	}
	return nil, ov.RequiredCredits, domain.NewAppError(domain.CodeNotFound, "student report not found", nil)
}

func findRecord(records []domain.CreditReport, studentID uint) (*domain.CreditReport, bool) {
	for i := range records {
		if records[i].Student.ID == studentID {
			rec := records[i]
			return &rec, true
		}
	}
	return nil, false
}

func (s *reportService) requiredCredits(ctx context.Context) int {
	setting, err := s.settings.Get(ctx, domain.SettingRequiredCredits)
	if err != nil {
		level := slog.LevelWarn
		if domain.IsNotFound(err) {
			level = slog.LevelDebug
		}
		s.logger.Log(ctx, level, "read required credits failed, using default",
			slog.String("key", domain.SettingRequiredCredits),
			slog.Int("default", domain.DefaultRequiredCredits),
			slog.Any("error", err),
		)
		return domain.DefaultRequiredCredits
	}
	return domain.ParsePositiveInt(setting.Value, domain.DefaultRequiredCredits)
}

// saveSnapshot replaces the stored snapshot when records differ from it.
// The store is read once to learn its contents; after that the copy kept in
// memory is compared instead.
func (s *reportService) saveSnapshot(ctx context.Context, records []domain.CreditReport) {
	if s.snapshots == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if !s.known {
		if stored, _, err := s.snapshots.Load(ctx); err == nil {
			s.stored, s.known = stored, true
		}
	}
	if s.known && slices.Equal(s.stored, records) {
		return
	}

	if err := s.snapshots.Replace(ctx, records); err != nil {
		s.known = false
		s.logger.WarnContext(ctx, "save report snapshot failed", slog.Any("error", err))
		return
	}
	s.stored, s.known = slices.Clone(records), true
}

func (s *reportService) loadSnapshot(ctx context.Context) ([]domain.CreditReport, time.Time) {
	if s.snapshots == nil {
		return nil, time.Time{}
	}
	records, savedAt, err := s.snapshots.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load report snapshot failed", slog.Any("error", err))
		return nil, time.Time{}
	}
	s.logger.InfoContext(ctx, "serving report snapshot",
		slog.Int("records", len(records)),
		slog.Time("saved_at", savedAt),
	)
	return records, savedAt
}
