package home

import (
	"time"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/listing"
)

// Report views.
const (
	ViewCards = "cards"
	ViewTable = "table"
)

// ReportItem is a credit report with its completion indicator.
type ReportItem struct {
	Student      domain.Student  `json:"alumno"`
	TotalCredits int             `json:"totalCreditos"`
	Progress     domain.Progress `json:"progress"`
}

// ReportListResponse is one page of the credit report.
type ReportListResponse struct {
	Items           []ReportItem `json:"items"`
	Total           int          `json:"total"`
	Page            int          `json:"page"`
	PageSize        int          `json:"page_size"`
	TotalPages      int          `json:"total_pages"`
	From            int          `json:"from"`
	To              int          `json:"to"`
	Query           string       `json:"q"`
	RequiredCredits int          `json:"required_credits"`
	Stale           bool         `json:"stale"`
	FetchedAt       *time.Time   `json:"fetched_at,omitempty"`
}

// ReportDetailResponse is the report of a single student.
type ReportDetailResponse struct {
	ReportItem
	RequiredCredits int `json:"required_credits"`
	Missing         int `json:"missing_credits"`
}

func newReportItem(rec domain.CreditReport, required int) ReportItem {
	return ReportItem{
		Student:      rec.Student,
		TotalCredits: rec.TotalCredits,
		Progress:     domain.Completion(rec.TotalCredits, required),
	}
}

func newReportItems(records []domain.CreditReport, required int) []ReportItem {
	items := make([]ReportItem, len(records))
	for i, rec := range records {
		items[i] = newReportItem(rec, required)
	}
	return items
}

func newReportListResponse(ov *domain.Overview, page *listing.Page[domain.CreditReport]) *ReportListResponse {
	resp := &ReportListResponse{
		Items:           newReportItems(page.Items, ov.RequiredCredits),
		Total:           page.Total,
		Page:            page.Page,
		PageSize:        page.PageSize,
		TotalPages:      page.TotalPages,
		From:            page.From,
		To:              page.To,
		Query:           page.Query,
		RequiredCredits: ov.RequiredCredits,
		Stale:           ov.Stale,
	}
	if !ov.FetchedAt.IsZero() {
		t := ov.FetchedAt
		resp.FetchedAt = &t
	}
	return resp
}

func newReportDetailResponse(rec *domain.CreditReport, required int) *ReportDetailResponse {
	return &ReportDetailResponse{
		ReportItem:      newReportItem(*rec, required),
		RequiredCredits: required,
		Missing:         max(required-rec.TotalCredits, 0),
	}
}
