package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/hrms-backend-go/internal/domain/attendance"
	"github.com/andeshr/hrms-backend-go/internal/domain/schedule"
	"github.com/andeshr/hrms-backend-go/internal/pkg/holiday"
	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

type fakeScheduleRepo struct {
	days map[time.Weekday]*schedule.DaySchedule
}

func (f *fakeScheduleRepo) GetDay(_ context.Context, _ string, weekday time.Weekday) (*schedule.DaySchedule, error) {
	if day, ok := f.days[weekday]; ok {
		return day, nil
	}
	return nil, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) GetWeek(context.Context, string) ([]schedule.DaySchedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, day *schedule.DaySchedule) error {
	f.days[day.Weekday] = day
	return nil
}

func (f *fakeScheduleRepo) DeleteDay(_ context.Context, _ string, weekday time.Weekday) error {
	delete(f.days, weekday)
	return nil
}

type fakeAttendanceRepo struct {
	records []*attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{}
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) CreateOpen(_ context.Context, record *attendance.Record) error {
	for _, stored := range f.records {
		if stored.EmployeeID == record.EmployeeID && sameDay(stored.Date, record.Date) && stored.Open() {
			return attendance.ErrAlreadyCheckedIn
		}
	}
	stored := *record
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakeAttendanceRepo) GetOpen(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID && sameDay(record.Date, date) && record.Open() {
			copy := *record
			return &copy, nil
		}
	}
	return nil, attendance.ErrNoActiveCheckIn
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (*attendance.Record, error) {
	for _, record := range f.records {
		if record.ID == id {
			copy := *record
			return &copy, nil
		}
	}
	return nil, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Close(_ context.Context, record *attendance.Record) error {
	for _, stored := range f.records {
		if stored.ID == record.ID && stored.Open() {
			*stored = *record
			return nil
		}
	}
	return attendance.ErrNoActiveCheckIn
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record *attendance.Record) error {
	for i, stored := range f.records {
		if stored.ID == record.ID {
			copy := *record
			f.records[i] = &copy
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, record := range f.records {
		if record.EmployeeID == employeeID && !record.Date.Before(from) && !record.Date.After(to) {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, record := range f.records {
		if !record.Date.Before(from) && !record.Date.After(to) {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SumBalance(_ context.Context, employeeID string, from, to time.Time) (int, error) {
	total := 0
	for _, record := range f.records {
		if record.EmployeeID == employeeID && !record.Date.Before(from) && !record.Date.After(to) {
			total += record.BalanceMinutes
		}
	}
	return total, nil
}

func (f *fakeAttendanceRepo) CountPresentDays(_ context.Context, employeeID string, from, to time.Time) (int, error) {
	count := 0
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.CheckOut.IsPresent() &&
			!record.Date.Before(from) && !record.Date.After(to) {
			count++
		}
	}
	return count, nil
}

type staticHolidays struct {
	dates []string
}

func (s *staticHolidays) Fetch(context.Context, int) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, d := range s.dates {
		out = append(out, holiday.Holiday{Name: "Feriado", Date: d})
	}
	return out, nil
}

func officeShift() *schedule.Shift {
	return &schedule.Shift{
		Start: timeutil.NewClock(9, 0),
		End:   timeutil.NewClock(18, 0),
	}
}

// newTestService wires a service around fakes with a frozen wall clock.
// June 10, 2025 is a Tuesday.
func newTestService(repo *fakeAttendanceRepo, days map[time.Weekday]*schedule.DaySchedule, holidays []string, at time.Time) *attendanceService {
	return &attendanceService{
		attendanceRepo: repo,
		scheduleRepo:   &fakeScheduleRepo{days: days},
		calendar:       holiday.NewCalendar(&staticHolidays{dates: holidays}),
		location:       time.UTC,
		now:            func() time.Time { return at },
	}
}

func testDay(hour, minute int) time.Time {
	return time.Date(2025, time.June, 10, hour, minute, 0, 0, time.UTC)
}

func TestCheckInEarlyArrival(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		nil, testDay(8, 50))

	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.ObsOnTimeCredit, result.Observation)
	assert.Equal(t, 10, result.BalanceMinutes)
	assert.Equal(t, "08:50", result.CheckIn)
	assert.Equal(t, "09:00", result.ExpectedIn)
	assert.Equal(t, "18:00", result.ExpectedOut)
}

func TestCheckInOnTheDot(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		nil, testDay(9, 0))

	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Empty(t, result.Observation)
	assert.Equal(t, 0, result.BalanceMinutes)

	svc.now = func() time.Time { return testDay(18, 0) }
	closed, err := svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	assert.Empty(t, closed.Observation)
	assert.Equal(t, 0, closed.BalanceMinutes)
}

func TestCheckInLate(t *testing.T) {
	tests := []struct {
		name        string
		at          time.Time
		observation string
		balance     int
	}{
		{"within an hour", testDay(9, 20), attendance.ObsLate, -20},
		{"exactly an hour", testDay(10, 0), attendance.ObsLate, -60},
		{"over an hour", testDay(10, 30), attendance.ObsLateDiscount, -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeAttendanceRepo()
			svc := newTestService(repo,
				map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
				nil, tt.at)

			result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
			require.NoError(t, err)
			assert.Equal(t, tt.observation, result.Observation)
			assert.Equal(t, tt.balance, result.BalanceMinutes)
		})
	}
}

func TestCheckInOnHoliday(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		[]string{"2025-06-10"}, testDay(9, 5))

	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, attendance.ObsWorkedHoliday, result.Observation)
	assert.Equal(t, -5, result.BalanceMinutes)
}

func TestCheckInEarlyOnHoliday(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		[]string{"2025-06-10"}, testDay(8, 50))

	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	// The holiday relabel only excuses tardiness; an early arrival keeps
	// its credit.
	assert.Equal(t, attendance.ObsOnTimeCredit, result.Observation)
	assert.Equal(t, 10, result.BalanceMinutes)
}

func TestCheckInWithoutSchedule(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, map[time.Weekday]*schedule.DaySchedule{}, nil, testDay(20, 0))

	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrNoSchedule)
}

func TestCheckInWithoutScheduleAuthorized(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, map[time.Weekday]*schedule.DaySchedule{}, nil, testDay(20, 0))

	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{Authorized: true})
	require.NoError(t, err)

	assert.Equal(t, attendance.ObsOvertimePending, result.Observation)
	assert.True(t, result.Authorized)
	assert.Equal(t, 0, result.BalanceMinutes)
	assert.Empty(t, result.ExpectedIn)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		nil, testDay(9, 0))

	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInSecondSessionAfterCheckOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {
		Shift1: &schedule.Shift{Start: timeutil.NewClock(9, 0), End: timeutil.NewClock(13, 0)},
		Shift2: &schedule.Shift{Start: timeutil.NewClock(14, 0), End: timeutil.NewClock(18, 0)},
	}}

	svc := newTestService(repo, days, nil, testDay(9, 0))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return testDay(13, 0) }
	_, err = svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	// A closed morning session does not block the afternoon check-in.
	svc.now = func() time.Time { return testDay(14, 0) }
	result, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "14:00", result.CheckIn)
	assert.Equal(t, "14:00", result.ExpectedIn)
	assert.Equal(t, "18:00", result.ExpectedOut)
}

func TestCheckOutAccumulatesBalance(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}}

	svc := newTestService(repo, days, nil, testDay(8, 50))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return testDay(18, 10) }
	result, err := svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	assert.Equal(t, "Tiempo a favor, Tiempo a favor", result.Observation)
	assert.Equal(t, 20, result.BalanceMinutes)
	assert.Equal(t, "18:10", result.CheckOut)
}

func TestCheckOutEarly(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}}

	svc := newTestService(repo, days, nil, testDay(9, 0))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return testDay(17, 0) }
	result, err := svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	assert.Equal(t, "Falta cumplir horario", result.Observation)
	assert.Equal(t, -60, result.BalanceMinutes)
}

func TestCheckOutOvertime(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}}

	svc := newTestService(repo, days, nil, testDay(9, 0))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	svc.now = func() time.Time { return testDay(19, 30) }
	result, err := svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	assert.Equal(t, "Hora Extra", result.Observation)
	assert.Equal(t, 90, result.BalanceMinutes)
}

func TestCheckOutAuthorizedSession(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, map[time.Weekday]*schedule.DaySchedule{}, nil, testDay(20, 0))

	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{Authorized: true})
	require.NoError(t, err)

	svc.now = func() time.Time { return testDay(22, 30) }
	result, err := svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	assert.Equal(t, attendance.ObsOvertimePending, result.Observation)
	assert.Equal(t, 150, result.BalanceMinutes)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo,
		map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}},
		nil, testDay(18, 0))

	_, err := svc.CheckOut(context.Background(), "18532664-0")
	assert.ErrorIs(t, err, attendance.ErrNoActiveCheckIn)
}

func TestBalanceSumsAcrossDays(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{
		time.Tuesday:   {Shift1: officeShift()},
		time.Wednesday: {Shift1: officeShift()},
	}

	svc := newTestService(repo, days, nil, testDay(8, 50))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)
	svc.now = func() time.Time { return testDay(18, 0) }
	_, err = svc.CheckOut(context.Background(), "18532664-0")
	require.NoError(t, err)

	wednesday := testDay(9, 30).AddDate(0, 0, 1)
	svc.now = func() time.Time { return wednesday }
	_, err = svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	balance, err := svc.Balance(context.Background(), "18532664-0", from, to)
	require.NoError(t, err)

	// +10 early arrival, +0 on-time exit, -30 late next morning.
	assert.Equal(t, -20, balance)
}

func TestListAllSpansEmployees(t *testing.T) {
	repo := newFakeAttendanceRepo()
	days := map[time.Weekday]*schedule.DaySchedule{time.Tuesday: {Shift1: officeShift()}}

	svc := newTestService(repo, days, nil, testDay(9, 0))
	_, err := svc.CheckIn(context.Background(), "18532664-0", &attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckIn(context.Background(), "12345678-5", &attendance.CheckInRequest{})
	require.NoError(t, err)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	all, err := svc.ListAll(context.Background(), from, to)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListByEmployee(context.Background(), "18532664-0", from, to)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
