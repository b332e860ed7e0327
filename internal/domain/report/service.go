package report

import (
	"context"
)

// ReportService is the weekly pre-payroll engine.
type ReportService interface {
	// Generate recomputes the worksheet for a period ("YYYY-Www").
	// Fails with ErrInvalidPeriod when the identifier does not parse.
	Generate(ctx context.Context, periodID string) (Report, error)

	// SaveTransactions persists worksheet concept amounts for a period.
	// Positive amounts upsert, zero amounts delete; the batch is
	// all-or-nothing.
	SaveTransactions(ctx context.Context, req SaveTransactionsRequest) error

	// SaveJustifications persists the justified/unjustified marking of
	// one employee's candidate absences. All-or-nothing per batch.
	SaveJustifications(ctx context.Context, req SaveJustificationsRequest) error

	// ExportCSV regenerates the worksheet and renders it as CSV.
	// The suggested filename is "prenomina_<period>.csv".
	ExportCSV(ctx context.Context, periodID string) (filename string, data []byte, err error)
}
