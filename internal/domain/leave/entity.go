package leave

import (
	"time"

	"github.com/andeshr/hrms-backend-go/internal/pkg/timeutil"
)

type Type string

const (
	TypeVacation Type = "vacation"
	TypeMedical  Type = "medical"
	TypePersonal Type = "personal"
)

var TypeValues = []string{
	string(TypeVacation),
	string(TypeMedical),
	string(TypePersonal),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

type Request struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	// StartTime/EndTime bound an hourly request within the day. Absent for
	// whole-day requests.
	StartTime timeutil.Clock
	EndTime   timeutil.Clock
	// Days is the business-day count of the request, fixed at creation so a
	// later calendar change does not rewrite history.
	Days      int
	Status    Status
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
