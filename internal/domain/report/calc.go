package report

import (
	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/shopspring/decimal"
)

// ComputeTotals fills the derived fields of a row from its raw facts.
// Net pay is weekly salary minus the unjustified-absence deduction,
// plus overtime pay, plus perception amounts, minus deduction amounts.
func (r *Row) ComputeTotals(concepts []concept.ConceptResponse) {
	workDays := decimal.NewFromInt(int64(r.Employee.WorkDays))
	if workDays.IsZero() {
		r.DailyRate = decimal.Zero
	} else {
		r.DailyRate = r.Employee.WeeklySalary.Div(workDays)
	}

	r.UnjustifiedCount = 0
	for _, a := range r.Absences {
		if !a.Justified {
			r.UnjustifiedCount++
		}
	}
	r.AbsenceDeduction = r.DailyRate.Mul(decimal.NewFromInt(int64(r.UnjustifiedCount)))

	r.OvertimePay = decimal.NewFromFloat(r.OvertimeHours).Mul(r.Employee.OvertimeHourlyRate)

	net := r.Employee.WeeklySalary.Sub(r.AbsenceDeduction).Add(r.OvertimePay)
	for _, c := range concepts {
		amount, ok := r.Transactions[c.ID]
		if !ok {
			continue
		}
		switch c.Kind {
		case concept.KindPerception:
			net = net.Add(amount)
		case concept.KindDeduction:
			net = net.Sub(amount)
		}
	}
	r.NetPay = net
}
