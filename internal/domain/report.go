package domain

import (
	"context"
	"time"
)

// DefaultRequiredCredits is used when creditos_a_completar is missing or invalid.
const DefaultRequiredCredits = 6

// CreditReport is one student's aggregated credit total. It is a read-only
// snapshot of what the backend reported.
type CreditReport struct {
	Student      Student `json:"alumno"`
	TotalCredits int     `json:"totalCreditos"`
}

// SearchFields returns the values matched by the report search box.
func (r CreditReport) SearchFields() []string {
	return r.Student.SearchFields()
}

// Progress is the completion indicator of a credit report.
type Progress struct {
	Percentage float64 `json:"percentage"`
	Complete   bool    `json:"complete"`
}

// Completion computes how far total is from the required credits.
// The percentage is clamped to [0, 100]. A non-positive required value
// falls back to DefaultRequiredCredits.
func Completion(total, required int) Progress {
	if required <= 0 {
		required = DefaultRequiredCredits
	}
	pct := float64(total) / float64(required) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return Progress{
		Percentage: pct,
		Complete:   total >= required,
	}
}

// ReportSnapshot is the locally persisted copy of a credit report row,
// served when the backend cannot be reached.
type ReportSnapshot struct {
	BaseModel
	StudentID     uint   `gorm:"index;not null"`
	ControlNumber string `gorm:"size:32"`
	Names         string `gorm:"size:150"`
	Surnames      string `gorm:"size:150"`
	TotalCredits  int    `gorm:"not null;default:0"`
	Position      int    `gorm:"not null;default:0"`
}

// Overview is the data behind the credit report page.
type Overview struct {
	Records         []CreditReport
	RequiredCredits int
	// Stale is set when the backend could not be reached. Records then
	// come from the local snapshot and may be empty.
	Stale bool
	// FetchedAt is when Records were read from the backend. Zero when
	// nothing has ever been fetched.
	FetchedAt time.Time
}

// ReportRepository fetches credit reports from the backend.
type ReportRepository interface {
	CreditReports(ctx context.Context) ([]CreditReport, error)
}

// SnapshotRepository persists the last successfully fetched report.
type SnapshotRepository interface {
	Replace(ctx context.Context, records []CreditReport) error
	Load(ctx context.Context) ([]CreditReport, time.Time, error)
}

// ReportService defines the business logic interface for the credit report.
type ReportService interface {
	Overview(ctx context.Context) *Overview
	Record(ctx context.Context, studentID uint) (*CreditReport, int, error)
}
