package notification

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	notifications Repository
	orders        OrderRepository
	drivers       DriverRepository
}

func New(notifications Repository, orders OrderRepository, drivers DriverRepository) *Service {
	return &Service{
		notifications: notifications,
		orders:        orders,
		drivers:       drivers,
	}
}

// NotifyAssignment создаёт уведомления клиенту и водителю об успешном назначении.
// Вызывается после фиксации назначения: ошибка здесь не откатывает резервирование,
// решение о повторе принимает вызывающая сторона.
func (s *Service) NotifyAssignment(ctx context.Context, orderID string, driverID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order for notification: %w", err)
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return fmt.Errorf("get driver for notification: %w", err)
	}

	customerMsg := fmt.Sprintf("A driver has been assigned to your order %s and is on the way to pick it up", order.ID)
	_, err = s.notifications.Create(ctx, order.CustomerID, entities.NotificationDriverAssigned, customerMsg)
	if err != nil {
		return fmt.Errorf("create customer notification: %w", err)
	}

	driverMsg := fmt.Sprintf("New delivery assigned: pick up order %s from merchant %s", order.ID, order.MerchantID)
	_, err = s.notifications.Create(ctx, driver.UserID, entities.NotificationDeliveryTask, driverMsg)
	if err != nil {
		return fmt.Errorf("create driver notification: %w", err)
	}

	return nil
}

// NotifyDispatchFailed сообщает клиенту, что водителя найти не удалось.
// Тихий отказ недопустим: заказ остаётся в ready_for_pickup и требует
// вмешательства оператора.
func (s *Service) NotifyDispatchFailed(ctx context.Context, orderID string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order for notification: %w", err)
	}

	msg := fmt.Sprintf("We could not find an available driver for your order %s yet, our team is on it", order.ID)
	_, err = s.notifications.Create(ctx, order.CustomerID, entities.NotificationDispatchFailed, msg)
	if err != nil {
		return fmt.Errorf("create customer notification: %w", err)
	}

	return nil
}
