package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:          d.ID,
		UserID:      d.UserID,
		PlateNumber: d.PlateNumber,
		Approval:    entities.DriverApprovalType(d.Approval),
		IsAvailable: d.IsAvailable,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
