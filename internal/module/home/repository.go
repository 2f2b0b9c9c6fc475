package home

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

const snapshotBatchSize = 200

// snapshotRepository implements domain.SnapshotRepository using GORM.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a SnapshotRepository backed by the given GORM database.
func NewSnapshotRepository(db *gorm.DB) domain.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Replace swaps the stored snapshot for records in a single transaction.
func (r *snapshotRepository) Replace(ctx context.Context, records []domain.CreditReport) error {
	rows := make([]domain.ReportSnapshot, len(records))
	for i, rec := range records {
		rows[i] = domain.ReportSnapshot{
			StudentID:     rec.Student.ID,
			ControlNumber: rec.Student.ControlNumber,
			Names:         rec.Student.Names,
			Surnames:      rec.Student.Surnames,
			TotalCredits:  rec.TotalCredits,
			Position:      i,
		}
	}

	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&domain.ReportSnapshot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, snapshotBatchSize).Error
	})
	return mapError(err)
}

// Load returns the stored snapshot in its original order together with the
// time it was saved. An empty store yields no records and a zero time.
func (r *snapshotRepository) Load(ctx context.Context) ([]domain.CreditReport, time.Time, error) {
	var rows []domain.ReportSnapshot
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, time.Time{}, mapError(err)
	}

	var savedAt time.Time
	records := make([]domain.CreditReport, len(rows))
	for i, row := range rows {
		records[i] = domain.CreditReport{
			Student: domain.Student{
				ID:            row.StudentID,
				ControlNumber: row.ControlNumber,
				Names:         row.Names,
				Surnames:      row.Surnames,
			},
			TotalCredits: row.TotalCredits,
		}
		if row.CreatedAt.After(savedAt) {
			savedAt = row.CreatedAt
		}
	}
	return records, savedAt, nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeInternal, "snapshot store error", err)
}
