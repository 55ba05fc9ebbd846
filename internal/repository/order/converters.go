package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		MerchantID: o.MerchantID,
		CustomerID: o.CustomerID,
		Status:     entities.OrderStatusType(o.Status),
		DriverID:   o.DriverID,
		PickupLat:  o.PickupLat,
		PickupLon:  o.PickupLon,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
