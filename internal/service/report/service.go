package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/domain/justification"
	"github.com/checadormx/checador-backend-go/internal/domain/payroll"
	"github.com/checadormx/checador-backend-go/internal/domain/report"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/checadormx/checador-backend-go/internal/pkg/period"
	"github.com/checadormx/checador-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type reportService struct {
	employees      employee.EmployeeRepository
	punches        attendance.PunchRepository
	concepts       concept.ConceptRepository
	justifications justification.JustificationRepository
	transactions   payroll.TransactionRepository

	// runTx wraps a batch in one database transaction.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewReportService(
	db *database.DB,
	employees employee.EmployeeRepository,
	punches attendance.PunchRepository,
	concepts concept.ConceptRepository,
	justifications justification.JustificationRepository,
	transactions payroll.TransactionRepository,
) report.ReportService {
	return &reportService{
		employees:      employees,
		punches:        punches,
		concepts:       concepts,
		justifications: justifications,
		transactions:   transactions,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Generate implements report.ReportService. The worksheet is derived on
// every call; nothing is written.
func (s *reportService) Generate(ctx context.Context, periodID string) (report.Report, error) {
	p, err := period.Parse(periodID)
	if err != nil {
		return report.Report{}, report.ErrInvalidPeriod
	}

	var result report.Report
	err = s.runTx(ctx, func(ctx context.Context) error {
		result, err = s.generate(ctx, p)
		return err
	})
	if err != nil {
		return report.Report{}, err
	}
	return result, nil
}

func (s *reportService) generate(ctx context.Context, p period.Period) (report.Report, error) {
	employees, err := s.employees.List(ctx, true)
	if err != nil {
		return report.Report{}, err
	}
	concepts, err := s.concepts.List(ctx, true)
	if err != nil {
		return report.Report{}, err
	}

	conceptResponses := make([]concept.ConceptResponse, 0, len(concepts))
	for _, c := range concepts {
		conceptResponses = append(conceptResponses, concept.ToResponse(c))
	}

	dates := p.Dates()
	rows := make([]report.Row, 0, len(employees))
	for _, e := range employees {
		row, err := s.buildRow(ctx, e, p.String(), dates[:e.WorkDays])
		if err != nil {
			return report.Report{}, err
		}
		row.ComputeTotals(conceptResponses)
		rows = append(rows, row)
	}

	return report.Report{
		Period:   p.String(),
		Concepts: conceptResponses,
		Rows:     rows,
	}, nil
}

// buildRow derives one employee's worksheet row: absence candidates on
// working days without punches, overtime from the last closed punch of
// each day, and the saved transaction amounts.
func (s *reportService) buildRow(ctx context.Context, e employee.Employee, periodID string, workingDates []time.Time) (report.Row, error) {
	row := report.Row{
		Employee:     employee.ToResponse(e),
		Absences:     []report.AbsenceEntry{},
		Transactions: map[string]decimal.Decimal{},
	}

	for _, date := range workingDates {
		punches, err := s.punches.ListByEmployeeAndDate(ctx, e.ID, date)
		if err != nil {
			return report.Row{}, err
		}

		if len(punches) == 0 {
			j, err := s.justifications.GetByEmployeeAndDate(ctx, e.ID, date)
			if err != nil {
				return report.Row{}, err
			}
			entry := report.AbsenceEntry{Date: date.Format("2006-01-02")}
			if j != nil {
				entry.Justified = true
				entry.Reason = j.Reason
			}
			row.Absences = append(row.Absences, entry)
			continue
		}

		// The last punch of the day is authoritative for overtime. The
		// scheduled checkout is anchored in the punch's own zone; period
		// dates are bare day markers and carry no usable offset.
		last := punches[len(punches)-1]
		if last.CheckOut != nil {
			day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, last.CheckOut.Location())
			extra := last.CheckOut.Sub(e.ScheduleOutOn(day)).Hours()
			if extra > 0 {
				row.OvertimeHours += extra
			}
		}
	}

	transactions, err := s.transactions.ListByEmployeeAndPeriod(ctx, e.ID, periodID)
	if err != nil {
		return report.Row{}, err
	}
	for _, t := range transactions {
		row.Transactions[t.ConceptID] = t.Amount
	}

	return row, nil
}

// SaveTransactions implements report.ReportService. Positive amounts
// upsert their cell, zero amounts delete it. The whole batch commits or
// rolls back together.
func (s *reportService) SaveTransactions(ctx context.Context, req report.SaveTransactionsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := period.Parse(req.Period); err != nil {
		return report.ErrInvalidPeriod
	}

	return s.runTx(ctx, func(ctx context.Context) error {
		for _, entry := range req.Entries {
			if entry.Amount.IsPositive() {
				if err := s.transactions.Upsert(ctx, entry.EmployeeID, req.Period, entry.ConceptID, entry.Amount); err != nil {
					return err
				}
				continue
			}
			if err := s.transactions.Delete(ctx, entry.EmployeeID, req.Period, entry.ConceptID); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveJustifications implements report.ReportService. A justified entry
// upserts its (employee, date) row, an unjustified one deletes it.
func (s *reportService) SaveJustifications(ctx context.Context, req report.SaveJustificationsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	return s.runTx(ctx, func(ctx context.Context) error {
		for _, entry := range req.Entries {
			date, err := time.Parse("2006-01-02", entry.Date)
			if err != nil {
				return fmt.Errorf("failed to parse date: %w", err)
			}

			if !entry.Justified {
				if err := s.justifications.Delete(ctx, req.EmployeeID, date); err != nil {
					return err
				}
				continue
			}

			reason := strings.TrimSpace(entry.Reason)
			if reason == "" {
				reason = justification.DefaultReason
			}
			err = s.justifications.Upsert(ctx, justification.Justification{
				EmployeeID: req.EmployeeID,
				Date:       date,
				Reason:     reason,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ExportCSV implements report.ReportService.
func (s *reportService) ExportCSV(ctx context.Context, periodID string) (string, []byte, error) {
	rep, err := s.Generate(ctx, periodID)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	writeRecord := func(fields []string) {
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteString("\r\n")
	}

	header := []string{quote("Empleado"), quote("Salario Semanal"), quote("Faltas"), quote("Horas Extras")}
	for _, c := range rep.Concepts {
		header = append(header, quote(c.Name))
	}
	header = append(header, quote("Neto a Pagar"))
	writeRecord(header)

	for _, row := range rep.Rows {
		fields := []string{
			quote(row.Employee.FullName),
			row.Employee.WeeklySalary.StringFixed(2),
			quote(fmt.Sprintf("%d falta(s)", len(row.Absences))),
			fmt.Sprintf("%.2f", row.OvertimeHours),
		}
		for _, c := range rep.Concepts {
			amount, ok := row.Transactions[c.ID]
			if !ok {
				amount = decimal.Zero
			}
			fields = append(fields, amount.StringFixed(2))
		}
		fields = append(fields, row.NetPay.StringFixed(2))
		writeRecord(fields)
	}

	return fmt.Sprintf("prenomina_%s.csv", rep.Period), buf.Bytes(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
