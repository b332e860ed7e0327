package report

import (
	"context"
	"testing"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/domain/justification"
	"github.com/checadormx/checador-backend-go/internal/domain/payroll"
	"github.com/checadormx/checador-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== In-memory fakes =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCardUUID(_ context.Context, cardUUID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.CardUUID == cardUUID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByKioskToken(_ context.Context, token string, now time.Time) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.KioskToken != nil && *e.KioskToken == token && e.KioskTokenExpiry != nil && e.KioskTokenExpiry.After(now) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if activeOnly && !e.Active {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = e
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) SetPINHash(_ context.Context, id, hash string) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].PINHash = &hash
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) SetKioskToken(_ context.Context, id, token string, expiry time.Time) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].KioskToken = &token
			f.employees[i].KioskTokenExpiry = &expiry
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error { return nil }

type fakePunchRepo struct {
	byEmployeeDate map[string][]attendance.Punch
}

func punchKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakePunchRepo) add(p attendance.Punch) {
	if f.byEmployeeDate == nil {
		f.byEmployeeDate = map[string][]attendance.Punch{}
	}
	key := punchKey(p.EmployeeID, p.Date)
	f.byEmployeeDate[key] = append(f.byEmployeeDate[key], p)
}

func (f *fakePunchRepo) ListByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	return f.byEmployeeDate[punchKey(employeeID, date)], nil
}

func (f *fakePunchRepo) CreateOpen(context.Context, string, time.Time, time.Time) (attendance.Punch, error) {
	return attendance.Punch{}, nil
}
func (f *fakePunchRepo) CloseOpen(context.Context, string, time.Time) (attendance.Punch, error) {
	return attendance.Punch{}, nil
}
func (f *fakePunchRepo) GetByID(context.Context, string) (attendance.Punch, error) {
	return attendance.Punch{}, attendance.ErrPunchNotFound
}
func (f *fakePunchRepo) List(context.Context, attendance.PunchFilter) ([]attendance.Punch, error) {
	return nil, nil
}
func (f *fakePunchRepo) ListRecent(context.Context, int) ([]attendance.Punch, error) {
	return nil, nil
}
func (f *fakePunchRepo) Update(context.Context, attendance.Punch) error { return nil }
func (f *fakePunchRepo) Delete(context.Context, string) error           { return nil }

type fakeConceptRepo struct {
	concepts []concept.Concept
}

func (f *fakeConceptRepo) Create(_ context.Context, c concept.Concept) (concept.Concept, error) {
	f.concepts = append(f.concepts, c)
	return c, nil
}

func (f *fakeConceptRepo) GetByID(_ context.Context, id string) (concept.Concept, error) {
	for _, c := range f.concepts {
		if c.ID == id {
			return c, nil
		}
	}
	return concept.Concept{}, concept.ErrConceptNotFound
}

func (f *fakeConceptRepo) List(_ context.Context, activeOnly bool) ([]concept.Concept, error) {
	var out []concept.Concept
	for _, c := range f.concepts {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeConceptRepo) Update(context.Context, concept.Concept) error { return nil }
func (f *fakeConceptRepo) Delete(context.Context, string) error          { return nil }

type fakeJustificationRepo struct {
	byKey map[string]justification.Justification
}

func justificationKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeJustificationRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*justification.Justification, error) {
	if j, ok := f.byKey[justificationKey(employeeID, date)]; ok {
		return &j, nil
	}
	return nil, nil
}

func (f *fakeJustificationRepo) Upsert(_ context.Context, j justification.Justification) error {
	if f.byKey == nil {
		f.byKey = map[string]justification.Justification{}
	}
	f.byKey[justificationKey(j.EmployeeID, j.Date)] = j
	return nil
}

func (f *fakeJustificationRepo) Delete(_ context.Context, employeeID string, date time.Time) error {
	delete(f.byKey, justificationKey(employeeID, date))
	return nil
}

type fakeTransactionRepo struct {
	byKey map[string]payroll.Transaction
}

func transactionKey(employeeID, period, conceptID string) string {
	return employeeID + "|" + period + "|" + conceptID
}

func (f *fakeTransactionRepo) ListByEmployeeAndPeriod(_ context.Context, employeeID, period string) ([]payroll.Transaction, error) {
	var out []payroll.Transaction
	for _, t := range f.byKey {
		if t.EmployeeID == employeeID && t.Period == period {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Upsert(_ context.Context, employeeID, period, conceptID string, amount decimal.Decimal) error {
	if f.byKey == nil {
		f.byKey = map[string]payroll.Transaction{}
	}
	f.byKey[transactionKey(employeeID, period, conceptID)] = payroll.Transaction{
		EmployeeID: employeeID,
		Period:     period,
		ConceptID:  conceptID,
		Amount:     amount,
	}
	return nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, employeeID, period, conceptID string) error {
	delete(f.byKey, transactionKey(employeeID, period, conceptID))
	return nil
}

// ===== Fixture =====

type fixture struct {
	employees      *fakeEmployeeRepo
	punches        *fakePunchRepo
	concepts       *fakeConceptRepo
	justifications *fakeJustificationRepo
	transactions   *fakeTransactionRepo
	service        *reportService
}

func newFixture() *fixture {
	f := &fixture{
		employees:      &fakeEmployeeRepo{},
		punches:        &fakePunchRepo{},
		concepts:       &fakeConceptRepo{},
		justifications: &fakeJustificationRepo{},
		transactions:   &fakeTransactionRepo{},
	}
	f.service = &reportService{
		employees:      f.employees,
		punches:        f.punches,
		concepts:       f.concepts,
		justifications: f.justifications,
		transactions:   f.transactions,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return f
}

const (
	testEmployeeID = "2f1e9c46-3f58-4a77-9d5a-111111111111"
	testConceptID  = "5b8d2a10-77aa-4e01-bb6f-222222222222"
	testPeriod     = "2024-W23" // Monday 2024-06-03
)

func (f *fixture) addEmployee(workDays int) {
	f.employees.employees = append(f.employees.employees, employee.Employee{
		ID:                 testEmployeeID,
		FullName:           "Ana Torres",
		WeeklySalary:       decimal.NewFromInt(2100),
		WorkDays:           workDays,
		ScheduleIn:         "08:00",
		ScheduleOut:        "20:00",
		OvertimeHourlyRate: decimal.NewFromInt(50),
		Active:             true,
	})
}

func (f *fixture) addClosedPunch(t *testing.T, day, in, out string) {
	t.Helper()
	f.addClosedPunchIn(t, time.UTC, day, in, out)
}

// addClosedPunchIn records a closed punch whose instants carry the given
// zone, the way a non-UTC host stamps them. The date stays a bare day
// marker.
func (f *fixture) addClosedPunchIn(t *testing.T, loc *time.Location, day, in, out string) {
	t.Helper()
	date, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	checkIn := mustClock(t, date, in, loc)
	checkOut := mustClock(t, date, out, loc)
	f.punches.add(attendance.Punch{
		EmployeeID: testEmployeeID,
		Date:       date,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
	})
}

func mustClock(t *testing.T, date time.Time, clock string, loc *time.Location) time.Time {
	t.Helper()
	c, err := time.Parse("15:04", clock)
	require.NoError(t, err)
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

// fullWeek fills every working day with an on-schedule punch so a test
// can perturb a single day.
func (f *fixture) fullWeek(t *testing.T, workDays int) {
	t.Helper()
	days := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08", "2024-06-09"}
	for i := 0; i < workDays; i++ {
		f.addClosedPunch(t, days[i], "08:00", "20:00")
	}
}

// ===== Tests =====

func TestGenerate_InvalidPeriod(t *testing.T) {
	f := newFixture()

	_, err := f.service.Generate(context.Background(), "2024-23")
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)

	_, err = f.service.Generate(context.Background(), "2024-W54")
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestGenerate_OvertimeFromLastPunch(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	f.fullWeek(t, 6)
	// Tuesday runs 1.5h past the 20:00 scheduled exit.
	f.punches.byEmployeeDate[punchKey(testEmployeeID, mustDate(t, "2024-06-04"))] = nil
	f.addClosedPunch(t, "2024-06-04", "08:00", "21:30")

	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.InDelta(t, 1.5, row.OvertimeHours, 1e-9)
	assert.True(t, row.OvertimePay.Equal(decimal.NewFromInt(75)), "overtime pay = %s", row.OvertimePay)
	assert.True(t, row.NetPay.Equal(decimal.NewFromInt(2175)), "net pay = %s", row.NetPay)
}

func TestGenerate_ScheduleAnchoredInPunchZone(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	// Punches stamped on a UTC-6 host. On-schedule days must contribute
	// zero overtime even though the period dates are UTC midnights.
	mexicoCity := time.FixedZone("UTC-6", -6*60*60)
	days := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08"}
	for _, day := range days {
		f.addClosedPunchIn(t, mexicoCity, day, "08:00", "20:00")
	}
	// Tuesday runs 1.5h past the 20:00 scheduled exit.
	f.punches.byEmployeeDate[punchKey(testEmployeeID, mustDate(t, "2024-06-04"))] = nil
	f.addClosedPunchIn(t, mexicoCity, "2024-06-04", "08:00", "21:30")

	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.InDelta(t, 1.5, row.OvertimeHours, 1e-9)
	assert.Empty(t, row.Absences)
	assert.True(t, row.NetPay.Equal(decimal.NewFromInt(2175)), "net pay = %s", row.NetPay)
}

func TestGenerate_LastPunchOfDayIsAuthoritative(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	f.fullWeek(t, 6)
	// A second punch on Monday closes at 23:00. Only the last punch
	// counts, so Monday contributes three hours, not zero.
	f.addClosedPunch(t, "2024-06-03", "21:00", "23:00")
	key := punchKey(testEmployeeID, mustDate(t, "2024-06-03"))
	punches := f.punches.byEmployeeDate[key]
	require.Len(t, punches, 2)

	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, rep.Rows[0].OvertimeHours, 1e-9)
}

func TestGenerate_AbsencesOnlyOnWorkingDayPrefix(t *testing.T) {
	f := newFixture()
	f.addEmployee(4)
	// No punches at all: absences are Monday through Thursday only.
	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	require.Len(t, row.Absences, 4)
	assert.Equal(t, "2024-06-03", row.Absences[0].Date)
	assert.Equal(t, "2024-06-06", row.Absences[3].Date)
	assert.Equal(t, 4, row.UnjustifiedCount)

	// Daily rate 2100/4 = 525, all four unjustified.
	assert.True(t, row.AbsenceDeduction.Equal(decimal.NewFromInt(2100)))
	assert.True(t, row.NetPay.Equal(decimal.Zero))
}

func TestGenerate_JustifiedAbsenceNotDeducted(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	f.fullWeek(t, 6)
	// Remove Wednesday and justify it.
	wednesday := mustDate(t, "2024-06-05")
	f.punches.byEmployeeDate[punchKey(testEmployeeID, wednesday)] = nil
	require.NoError(t, f.justifications.Upsert(context.Background(), justification.Justification{
		EmployeeID: testEmployeeID,
		Date:       wednesday,
		Reason:     "Cita médica",
	}))

	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)

	row := rep.Rows[0]
	require.Len(t, row.Absences, 1)
	assert.True(t, row.Absences[0].Justified)
	assert.Equal(t, "Cita médica", row.Absences[0].Reason)
	assert.Equal(t, 0, row.UnjustifiedCount)
	assert.True(t, row.NetPay.Equal(decimal.NewFromInt(2100)))
}

func TestGenerate_TransactionsFoldedIntoNetPay(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	f.fullWeek(t, 6)
	f.concepts.concepts = []concept.Concept{
		{ID: testConceptID, Name: "Bono puntualidad", Kind: concept.KindPerception, Active: true},
	}
	require.NoError(t, f.transactions.Upsert(context.Background(), testEmployeeID, testPeriod, testConceptID, decimal.NewFromInt(150)))

	rep, err := f.service.Generate(context.Background(), testPeriod)
	require.NoError(t, err)

	row := rep.Rows[0]
	assert.True(t, row.Transactions[testConceptID].Equal(decimal.NewFromInt(150)))
	assert.True(t, row.NetPay.Equal(decimal.NewFromInt(2250)), "net pay = %s", row.NetPay)
}

func TestSaveTransactions_UpsertAndDeleteOnZero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := report.SaveTransactionsRequest{
		Period: testPeriod,
		Entries: []report.TransactionEntry{
			{EmployeeID: testEmployeeID, ConceptID: testConceptID, Amount: decimal.NewFromInt(200)},
		},
	}
	require.NoError(t, f.service.SaveTransactions(ctx, req))

	saved, err := f.transactions.ListByEmployeeAndPeriod(ctx, testEmployeeID, testPeriod)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].Amount.Equal(decimal.NewFromInt(200)))

	// Saving the same cell again replaces, not duplicates.
	req.Entries[0].Amount = decimal.NewFromInt(300)
	require.NoError(t, f.service.SaveTransactions(ctx, req))
	saved, err = f.transactions.ListByEmployeeAndPeriod(ctx, testEmployeeID, testPeriod)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].Amount.Equal(decimal.NewFromInt(300)))

	// Zero removes the row.
	req.Entries[0].Amount = decimal.Zero
	require.NoError(t, f.service.SaveTransactions(ctx, req))
	saved, err = f.transactions.ListByEmployeeAndPeriod(ctx, testEmployeeID, testPeriod)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSaveTransactions_InvalidPeriod(t *testing.T) {
	f := newFixture()

	err := f.service.SaveTransactions(context.Background(), report.SaveTransactionsRequest{
		Period: "W23-2024",
	})
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestSaveJustifications_UpsertDefaultReasonAndDelete(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	ctx := context.Background()

	req := report.SaveJustificationsRequest{
		EmployeeID: testEmployeeID,
		Entries: []report.JustificationEntry{
			{Date: "2024-06-05", Justified: true, Reason: "  "},
		},
	}
	require.NoError(t, f.service.SaveJustifications(ctx, req))

	j, err := f.justifications.GetByEmployeeAndDate(ctx, testEmployeeID, mustDate(t, "2024-06-05"))
	require.NoError(t, err)
	require.NotNil(t, j)
	assert.Equal(t, justification.DefaultReason, j.Reason)

	// Unmarking deletes the row.
	req.Entries[0].Justified = false
	require.NoError(t, f.service.SaveJustifications(ctx, req))
	j, err = f.justifications.GetByEmployeeAndDate(ctx, testEmployeeID, mustDate(t, "2024-06-05"))
	require.NoError(t, err)
	assert.Nil(t, j)
}

func TestSaveJustifications_UnknownEmployee(t *testing.T) {
	f := newFixture()

	err := f.service.SaveJustifications(context.Background(), report.SaveJustificationsRequest{
		EmployeeID: testConceptID, // valid UUID, no such employee
		Entries:    []report.JustificationEntry{{Date: "2024-06-05", Justified: true}},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestExportCSV(t *testing.T) {
	f := newFixture()
	f.addEmployee(6)
	f.fullWeek(t, 6)
	f.concepts.concepts = []concept.Concept{
		{ID: testConceptID, Name: "Bono puntualidad", Kind: concept.KindPerception, Active: true},
	}

	filename, data, err := f.service.ExportCSV(context.Background(), testPeriod)
	require.NoError(t, err)
	assert.Equal(t, "prenomina_2024-W23.csv", filename)

	content := string(data)
	assert.Contains(t, content, "\"Empleado\",\"Salario Semanal\",\"Faltas\",\"Horas Extras\",\"Bono puntualidad\",\"Neto a Pagar\"\r\n")
	assert.Contains(t, content, "\"Ana Torres\",2100.00,\"0 falta(s)\",0.00,0.00,2100.00\r\n")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
