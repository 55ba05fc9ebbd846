package entities

import "time"

type Driver struct {
	ID          int64
	UserID      int64
	PlateNumber string
	Approval    DriverApprovalType
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverApprovalType string

const (
	DriverPending  DriverApprovalType = "pending"
	DriverApproved DriverApprovalType = "approved"
	DriverRejected DriverApprovalType = "rejected"
)

func (t DriverApprovalType) String() string {
	return string(t)
}
