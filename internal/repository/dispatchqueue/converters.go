package dispatchqueue

import "dispatch/internal/entities"

func ToDomain(j *DispatchJobDB) *entities.DispatchJob {
	if j == nil {
		return nil
	}
	return &entities.DispatchJob{
		ID:           j.ID,
		OrderID:      j.OrderID,
		MerchantID:   j.MerchantID,
		Attempt:      j.Attempt,
		Status:       entities.DispatchJobStatusType(j.Status),
		VisibleAfter: j.VisibleAfter,
		LockedUntil:  j.LockedUntil,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
