package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeID = "2f1e9c46-3f58-4a77-9d5a-111111111111"
	missingID      = "2f1e9c46-3f58-4a77-9d5a-999999999999"
)

// memPunchRepo keeps the open-punch invariant the way the database
// does, so the service's state machine can be exercised without one.
type memPunchRepo struct {
	punches []attendance.Punch
	nextID  int
}

func (m *memPunchRepo) openIndex(employeeID string) int {
	for i, p := range m.punches {
		if p.EmployeeID == employeeID && p.Open() {
			return i
		}
	}
	return -1
}

func (m *memPunchRepo) CreateOpen(_ context.Context, employeeID string, date, checkIn time.Time) (attendance.Punch, error) {
	if m.openIndex(employeeID) >= 0 {
		return attendance.Punch{}, attendance.ErrAlreadyCheckedIn
	}
	m.nextID++
	p := attendance.Punch{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &checkIn,
		CreatedAt:  checkIn,
	}
	m.punches = append(m.punches, p)
	return p, nil
}

func (m *memPunchRepo) CloseOpen(_ context.Context, employeeID string, checkOut time.Time) (attendance.Punch, error) {
	i := m.openIndex(employeeID)
	if i < 0 {
		return attendance.Punch{}, attendance.ErrNothingToClose
	}
	m.punches[i].CheckOut = &checkOut
	return m.punches[i], nil
}

func (m *memPunchRepo) GetByID(_ context.Context, id string) (attendance.Punch, error) {
	for _, p := range m.punches {
		if p.ID == id {
			return p, nil
		}
	}
	return attendance.Punch{}, attendance.ErrPunchNotFound
}

func (m *memPunchRepo) ListByEmployeeAndDate(context.Context, string, time.Time) ([]attendance.Punch, error) {
	return nil, nil
}
func (m *memPunchRepo) List(context.Context, attendance.PunchFilter) ([]attendance.Punch, error) {
	return m.punches, nil
}
func (m *memPunchRepo) ListRecent(context.Context, int) ([]attendance.Punch, error) {
	return nil, nil
}

func (m *memPunchRepo) Update(_ context.Context, p attendance.Punch) error {
	for i := range m.punches {
		if m.punches[i].ID == p.ID {
			m.punches[i] = p
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

func (m *memPunchRepo) Delete(_ context.Context, id string) error {
	for i := range m.punches {
		if m.punches[i].ID == id {
			m.punches = append(m.punches[:i], m.punches[i+1:]...)
			return nil
		}
	}
	return attendance.ErrPunchNotFound
}

type memEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (m *memEmployeeRepo) GetByCardUUID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (m *memEmployeeRepo) GetByKioskToken(context.Context, string, time.Time) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (m *memEmployeeRepo) List(context.Context, bool) ([]employee.Employee, error) { return nil, nil }
func (m *memEmployeeRepo) Update(context.Context, employee.Employee) error         { return nil }
func (m *memEmployeeRepo) SetPINHash(context.Context, string, string) error        { return nil }
func (m *memEmployeeRepo) SetKioskToken(context.Context, string, string, time.Time) error {
	return nil
}
func (m *memEmployeeRepo) Delete(context.Context, string) error { return nil }

func newTestService(active bool) (*punchService, *memPunchRepo) {
	punches := &memPunchRepo{}
	employees := &memEmployeeRepo{
		employees: map[string]employee.Employee{
			testEmployeeID: {
				ID:           testEmployeeID,
				FullName:     "Ana Torres",
				WeeklySalary: decimal.NewFromInt(2100),
				WorkDays:     6,
				ScheduleIn:   "08:00",
				ScheduleOut:  "20:00",
				Active:       active,
			},
		},
	}
	svc := &punchService{
		punches:   punches,
		employees: employees,
		now: func() time.Time {
			return time.Date(2024, 6, 4, 8, 2, 0, 0, time.UTC)
		},
	}
	return svc, punches
}

func TestCheckIn_OpensPunch(t *testing.T) {
	svc, repo := newTestService(true)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-04", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Ana Torres", *resp.EmployeeName)
	assert.Len(t, repo.punches, 1)
}

func TestCheckIn_TwiceFails(t *testing.T) {
	svc, _ := newTestService(true)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_InactiveEmployee(t *testing.T) {
	svc, _ := newTestService(false)

	_, err := svc.CheckIn(context.Background(), attendance.CheckRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.CheckIn(context.Background(), attendance.CheckRequest{EmployeeID: missingID})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOut_ClosesOpenPunch(t *testing.T) {
	svc, _ := newTestService(true)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.NotNil(t, resp.CheckOut)

	// The cycle can start again after closing.
	_, err = svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	assert.NoError(t, err)
}

func TestCheckOut_WithoutOpenPunch(t *testing.T) {
	svc, _ := newTestService(true)

	_, err := svc.CheckOut(context.Background(), attendance.CheckRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, attendance.ErrNothingToClose)
}

func TestCheckOut_InactiveEmployeeClosesOpenPunch(t *testing.T) {
	svc, _ := newTestService(true)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	// Deactivation mid-shift must not strand the open punch.
	repo := svc.employees.(*memEmployeeRepo)
	e := repo.employees[testEmployeeID]
	e.Active = false
	repo.employees[testEmployeeID] = e

	resp, err := svc.CheckOut(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	assert.NotNil(t, resp.CheckOut)

	// New check-ins stay blocked.
	_, err = svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestUpdate_AnchorsTimesOnDate(t *testing.T) {
	svc, repo := newTestService(true)
	ctx := context.Background()

	created, err := svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	in := "09:15"
	out := "18:45"
	resp, err := svc.Update(ctx, attendance.UpdatePunchRequest{
		ID:       created.ID,
		Date:     "2024-06-05",
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-05", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, 9, resp.CheckIn.Hour())
	assert.Equal(t, 15, resp.CheckIn.Minute())
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, 18, resp.CheckOut.Hour())

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", stored.Date.Format("2006-01-02"))
}

func TestUpdate_EmptyStringClearsCheckOut(t *testing.T) {
	svc, _ := newTestService(true)
	ctx := context.Background()

	created, err := svc.CheckIn(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, attendance.CheckRequest{EmployeeID: testEmployeeID})
	require.NoError(t, err)

	empty := ""
	resp, err := svc.Update(ctx, attendance.UpdatePunchRequest{
		ID:       created.ID,
		Date:     "2024-06-04",
		CheckOut: &empty,
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
}

func TestDelete_UnknownPunch(t *testing.T) {
	svc, _ := newTestService(true)

	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, attendance.ErrPunchNotFound)
}
