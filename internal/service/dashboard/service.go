package dashboard

import (
	"context"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/domain/dashboard"
	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/domain/kiosk"
)

// lateGrace is how far past the scheduled entry a first check-in may
// land before the employee counts as late.
const lateGrace = time.Minute

const recentActivityLimit = 10

type dashboardService struct {
	employees employee.EmployeeRepository
	punches   attendance.PunchRepository
	now       func() time.Time
}

func NewDashboardService(employees employee.EmployeeRepository, punches attendance.PunchRepository) dashboard.DashboardService {
	return &dashboardService{
		employees: employees,
		punches:   punches,
		now:       time.Now,
	}
}

// Today implements dashboard.DashboardService.
func (s *dashboardService) Today(ctx context.Context) (dashboard.DashboardResponse, error) {
	employees, err := s.employees.List(ctx, true)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	punches, err := s.punches.List(ctx, attendance.PunchFilter{Date: &today})
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	// Earliest check-in per employee decides lateness.
	firstIn := make(map[string]time.Time)
	for _, p := range punches {
		if p.CheckIn == nil {
			continue
		}
		if first, ok := firstIn[p.EmployeeID]; !ok || p.CheckIn.Before(first) {
			firstIn[p.EmployeeID] = *p.CheckIn
		}
	}

	kpis := dashboard.TodayKPIs{ActiveEmployees: len(employees)}
	for _, e := range employees {
		in, ok := firstIn[e.ID]
		if !ok {
			kpis.Absent++
			continue
		}
		kpis.Present++
		if in.After(e.ScheduleInOn(in).Add(lateGrace)) {
			kpis.Late++
		}
	}

	recent, err := s.punches.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	activity := make([]dashboard.ActivityItem, 0, len(recent))
	for _, p := range recent {
		item, ok := toActivity(p)
		if ok {
			activity = append(activity, item)
		}
	}

	return dashboard.DashboardResponse{
		KPIs:           kpis,
		RecentActivity: activity,
	}, nil
}

// toActivity maps a punch to its most recent event: the check-out when
// the punch is closed, otherwise the check-in.
func toActivity(p attendance.Punch) (dashboard.ActivityItem, bool) {
	name := p.EmployeeID
	if p.EmployeeName != nil {
		name = *p.EmployeeName
	}
	switch {
	case p.CheckOut != nil:
		return dashboard.ActivityItem{EmployeeName: name, Direction: kiosk.DirectionOut, At: *p.CheckOut}, true
	case p.CheckIn != nil:
		return dashboard.ActivityItem{EmployeeName: name, Direction: kiosk.DirectionIn, At: *p.CheckIn}, true
	default:
		return dashboard.ActivityItem{}, false
	}
}
