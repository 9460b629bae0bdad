package attendance

import (
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

// Observation labels stamped on attendance events. These exact strings are
// what reporting downstream groups by, so they are stable.
const (
	ObsOnTimeCredit    = "Tiempo a favor"
	ObsLate            = "Atraso"
	ObsLateDiscount    = "Descuento"
	ObsWorkedHoliday   = "Feriado Trabajado"
	ObsOvertimePending = "Horas extra por autorizar"
	ObsEarlyLeave      = "Falta cumplir horario"
	ObsOvertime        = "Hora Extra"
)

// LateThresholdMinutes splits a late arrival between a plain tardiness mark
// and a pay discount.
const LateThresholdMinutes = 60

// Record is one attendance day for an employee. CheckOut and the exit-side
// fields stay absent until the employee closes the day.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time // midnight in the company timezone
	CheckIn        timeutil.Clock
	CheckOut       timeutil.Clock
	ExpectedIn     timeutil.Clock
	ExpectedOut    timeutil.Clock
	Observation    string
	BalanceMinutes int
	Authorized     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Open reports whether the record has a check-in but no check-out yet.
func (r *Record) Open() bool {
	return r.CheckIn.IsPresent() && !r.CheckOut.IsPresent()
}
