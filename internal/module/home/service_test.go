package home

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

// --- fakes ---

type fakeReports struct {
	records []domain.CreditReport
	err     error
	calls   atomic.Int32
}

func (f *fakeReports) CreditReports(context.Context) ([]domain.CreditReport, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeSettings struct {
	values map[string]string
	getErr error
}

func (f *fakeSettings) List(context.Context) ([]domain.Setting, error) { return nil, nil }

func (f *fakeSettings) Get(_ context.Context, name string) (*domain.Setting, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.values[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Setting{Name: name, Value: v}, nil
}

func (f *fakeSettings) Create(_ context.Context, s domain.Setting) (*domain.Setting, error) {
	return &s, nil
}

func (f *fakeSettings) Update(_ context.Context, name, value string) (*domain.Setting, error) {
	return &domain.Setting{Name: name, Value: value}, nil
}

func (f *fakeSettings) Delete(context.Context, string) error { return nil }

type fakeSnapshots struct {
	records    []domain.CreditReport
	savedAt    time.Time
	replaced   [][]domain.CreditReport
	replaceErr error
	loadErr    error
}

func (f *fakeSnapshots) Replace(_ context.Context, records []domain.CreditReport) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = append(f.replaced, records)
	return nil
}

func (f *fakeSnapshots) Load(context.Context) ([]domain.CreditReport, time.Time, error) {
	if f.loadErr != nil {
		return nil, time.Time{}, f.loadErr
	}
	return f.records, f.savedAt, nil
}

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(reports *fakeReports, settings *fakeSettings, snapshots domain.SnapshotRepository) domain.ReportService {
	svc := NewReportService(reports, settings, snapshots, quietLogger())
	svc.(*reportService).now = func() time.Time { return fixedNow }
	return svc
}

func sampleRecords() []domain.CreditReport {
	return []domain.CreditReport{
		report(1, "201900001", "Ana", "Pérez", 6),
		report(2, "201900002", "Luis", "García", 3),
	}
}

// --- tests ---

func TestOverview_Success(t *testing.T) {
	snaps := &fakeSnapshots{}
	svc := newTestService(
		&fakeReports{records: sampleRecords()},
		&fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "8"}},
		snaps,
	)

	ov := svc.Overview(context.Background())

	if len(ov.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ov.Records))
	}
	if ov.RequiredCredits != 8 {
		t.Errorf("RequiredCredits = %d; want 8", ov.RequiredCredits)
	}
	if ov.Stale {
		t.Error("expected fresh overview")
	}
	if !ov.FetchedAt.Equal(fixedNow) {
		t.Errorf("FetchedAt = %v; want %v", ov.FetchedAt, fixedNow)
	}
	if len(snaps.replaced) != 1 || len(snaps.replaced[0]) != 2 {
		t.Errorf("expected snapshot to be replaced once with 2 records, got %v", snaps.replaced)
	}
}

func TestOverview_RequiredCreditsFallback(t *testing.T) {
	tests := []struct {
		name     string
		settings *fakeSettings
	}{
		{"missing", &fakeSettings{values: map[string]string{}}},
		{"unparsable", &fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "seis"}}},
		{"zero", &fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "0"}}},
		{"negative", &fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "-4"}}},
		{"backend down", &fakeSettings{getErr: domain.ErrUnavailable}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeReports{records: sampleRecords()}, tt.settings, nil)
			ov := svc.Overview(context.Background())
			if ov.RequiredCredits != domain.DefaultRequiredCredits {
				t.Errorf("RequiredCredits = %d; want %d", ov.RequiredCredits, domain.DefaultRequiredCredits)
			}
			if len(ov.Records) != 2 {
				t.Errorf("threshold failure must not affect records, got %d", len(ov.Records))
			}
		})
	}
}

func TestOverview_FallsBackToSnapshot(t *testing.T) {
	savedAt := fixedNow.Add(-time.Hour)
	snaps := &fakeSnapshots{records: sampleRecords()[:1], savedAt: savedAt}
	svc := newTestService(
		&fakeReports{err: domain.ErrUnavailable},
		&fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "10"}},
		snaps,
	)

	ov := svc.Overview(context.Background())

	if !ov.Stale {
		t.Error("expected stale overview")
	}
	if len(ov.Records) != 1 || ov.Records[0].Student.ID != 1 {
		t.Errorf("Records = %+v; want snapshot", ov.Records)
	}
	if !ov.FetchedAt.Equal(savedAt) {
		t.Errorf("FetchedAt = %v; want %v", ov.FetchedAt, savedAt)
	}
	if ov.RequiredCredits != 10 {
		t.Errorf("report failure must not affect threshold, got %d", ov.RequiredCredits)
	}
	if len(snaps.replaced) != 0 {
		t.Error("snapshot must not be replaced when the fetch failed")
	}
}

func TestOverview_DegradesToEmpty(t *testing.T) {
	tests := []struct {
		name      string
		snapshots domain.SnapshotRepository
	}{
		{"no snapshot store", nil},
		{"snapshot load error", &fakeSnapshots{loadErr: errors.New("disk full")}},
		{"empty snapshot", &fakeSnapshots{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeReports{err: errors.New("connection refused")}, &fakeSettings{}, tt.snapshots)
			ov := svc.Overview(context.Background())
			if ov.Records == nil || len(ov.Records) != 0 {
				t.Errorf("Records = %#v; want empty non-nil slice", ov.Records)
			}
			if !ov.Stale {
				t.Error("expected stale overview")
			}
		})
	}
}

func TestOverview_SnapshotSaveErrorIgnored(t *testing.T) {
	svc := newTestService(
		&fakeReports{records: sampleRecords()},
		&fakeSettings{},
		&fakeSnapshots{replaceErr: errors.New("read-only")},
	)

	ov := svc.Overview(context.Background())
	if ov.Stale || len(ov.Records) != 2 {
		t.Errorf("overview = %+v; want fresh records despite save failure", ov)
	}
}

func TestOverview_EmptyBackendReport(t *testing.T) {
	svc := newTestService(&fakeReports{}, &fakeSettings{}, nil)
	ov := svc.Overview(context.Background())
	if ov.Records == nil {
		t.Error("expected non-nil Records")
	}
}

func TestRecord(t *testing.T) {
	svc := newTestService(
		&fakeReports{records: sampleRecords()},
		&fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "4"}},
		nil,
	)

	rec, required, err := svc.Record(context.Background(), 2)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Student.Names != "Luis" || rec.TotalCredits != 3 {
		t.Errorf("Record = %+v; want Luis with 3 credits", rec)
	}
	if required != 4 {
		t.Errorf("required = %d; want 4", required)
	}

	_, _, err = svc.Record(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRecord_ReadsLastOverview(t *testing.T) {
	reports := &fakeReports{records: sampleRecords()}
	snaps := &fakeSnapshots{}
	svc := newTestService(reports, &fakeSettings{values: map[string]string{domain.SettingRequiredCredits: "4"}}, snaps)
	ctx := context.Background()

	svc.Overview(ctx)
	for _, id := range []uint{1, 2, 1} {
		rec, required, err := svc.Record(ctx, id)
		if err != nil || rec.Student.ID != id || required != 4 {
			t.Fatalf("Record(%d) = %+v, %d, %v", id, rec, required, err)
		}
	}

	if got := reports.calls.Load(); got != 1 {
		t.Errorf("backend report fetches = %d; want 1", got)
	}
	if len(snaps.replaced) != 1 {
		t.Errorf("snapshot writes = %d; want 1", len(snaps.replaced))
	}
}

func TestRecord_UnknownStudentReloads(t *testing.T) {
	reports := &fakeReports{records: sampleRecords()}
	svc := newTestService(reports, &fakeSettings{}, nil)
	ctx := context.Background()

	svc.Overview(ctx)
	reports.records = append(sampleRecords(), report(3, "201900003", "Eva", "Ruiz", 1))

	rec, _, err := svc.Record(ctx, 3)
	if err != nil || rec.Student.Names != "Eva" {
		t.Fatalf("Record(3) = %+v, %v; want Eva from a fresh load", rec, err)
	}
	if got := reports.calls.Load(); got != 2 {
		t.Errorf("backend report fetches = %d; want 2", got)
	}
}

func TestOverview_SnapshotWrittenOnlyOnChange(t *testing.T) {
	tests := []struct {
		name      string
		stored    []domain.CreditReport
		fetches   [][]domain.CreditReport
		wantSaves int
	}{
		{
			name:      "same report twice",
			fetches:   [][]domain.CreditReport{sampleRecords(), sampleRecords()},
			wantSaves: 1,
		},
		{
			name:      "store already holds the report",
			stored:    sampleRecords(),
			fetches:   [][]domain.CreditReport{sampleRecords(), sampleRecords()},
			wantSaves: 0,
		},
		{
			name:      "credits change",
			fetches:   [][]domain.CreditReport{sampleRecords(), {report(1, "201900001", "Ana", "Pérez", 7)}, {report(1, "201900001", "Ana", "Pérez", 7)}},
			wantSaves: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &fakeReports{}
			snaps := &fakeSnapshots{records: tt.stored}
			svc := newTestService(reports, &fakeSettings{}, snaps)
			for _, records := range tt.fetches {
				reports.records = records
				if ov := svc.Overview(context.Background()); len(ov.Records) != len(records) {
					t.Fatalf("Overview returned %d records; want %d", len(ov.Records), len(records))
				}
			}
			if len(snaps.replaced) != tt.wantSaves {
				t.Errorf("snapshot writes = %d; want %d", len(snaps.replaced), tt.wantSaves)
			}
		})
	}
}

func TestOverview_SnapshotRetriedAfterSaveError(t *testing.T) {
	snaps := &fakeSnapshots{replaceErr: errors.New("database is locked")}
	svc := newTestService(&fakeReports{records: sampleRecords()}, &fakeSettings{}, snaps)

	svc.Overview(context.Background())
	snaps.replaceErr = nil
	svc.Overview(context.Background())

	if len(snaps.replaced) != 1 {
		t.Errorf("snapshot writes = %d; want 1 after the failed attempt", len(snaps.replaced))
	}
}
