package entities

import "time"

// DispatchJob — сообщение очереди диспетчеризации. Живёт только в очереди,
// в реляционной модели заказа не участвует.
type DispatchJob struct {
	ID           int64
	OrderID      string
	MerchantID   string
	Attempt      int
	Status       DispatchJobStatusType
	VisibleAfter time.Time
	LockedUntil  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DispatchJobStatusType string

const (
	DispatchJobQueued     DispatchJobStatusType = "queued"
	DispatchJobProcessing DispatchJobStatusType = "processing"
	DispatchJobDone       DispatchJobStatusType = "done"
	DispatchJobFailed     DispatchJobStatusType = "failed"
)

func (s DispatchJobStatusType) String() string {
	return string(s)
}
