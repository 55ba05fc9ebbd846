package delivery

import "dispatch/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:        d.ID,
		OrderID:   d.OrderID,
		DriverID:  d.DriverID,
		Status:    entities.DeliveryStatusType(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
