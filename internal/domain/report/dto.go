package report

import (
	"strconv"

	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AbsenceEntry is a working day with no punch: a candidate absence,
// excused when a justification covers the date.
type AbsenceEntry struct {
	Date      string `json:"date"`
	Justified bool   `json:"justified"`
	Reason    string `json:"reason"`
}

// Row is the derived per-employee worksheet for one period. It is
// recomputed on every generation; edits become durable only through
// SaveTransactions / SaveJustifications.
type Row struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Absences []AbsenceEntry            `json:"absences"`
	// OvertimeHours carries full precision; display rounds to 2 decimals.
	OvertimeHours float64                    `json:"overtime_hours"`
	Transactions  map[string]decimal.Decimal `json:"transactions"`

	// Derived totals
	DailyRate        decimal.Decimal `json:"daily_rate"`
	UnjustifiedCount int             `json:"unjustified_count"`
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	NetPay           decimal.Decimal `json:"net_pay"`
}

// Report is the full worksheet: one row per active employee plus the
// active concept columns the presentation renders.
type Report struct {
	Period   string                    `json:"period"`
	Concepts []concept.ConceptResponse `json:"concepts"`
	Rows     []Row                     `json:"rows"`
}

type TransactionEntry struct {
	EmployeeID string          `json:"employee_id"`
	ConceptID  string          `json:"concept_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type SaveTransactionsRequest struct {
	Period  string             `json:"period"`
	Entries []TransactionEntry `json:"entries"`
}

func (r *SaveTransactionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	}
	for i, e := range r.Entries {
		if !validator.IsValidUUID(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + strconv.Itoa(i) + "].employee_id", Message: "must be a valid UUID"})
		}
		if !validator.IsValidUUID(e.ConceptID) {
			errs = append(errs, validator.ValidationError{Field: "entries[" + strconv.Itoa(i) + "].concept_id", Message: "must be a valid UUID"})
		}
		if e.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "entries[" + strconv.Itoa(i) + "].amount", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationEntry struct {
	Date      string `json:"date"`
	Justified bool   `json:"justified"`
	Reason    string `json:"reason"`
}

type SaveJustificationsRequest struct {
	EmployeeID string               `json:"employee_id"`
	Entries    []JustificationEntry `json:"entries"`
}

func (r *SaveJustificationsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	for i, e := range r.Entries {
		if _, ok := validator.IsValidDate(e.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "entries[" + strconv.Itoa(i) + "].date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
