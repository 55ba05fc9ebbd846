package status_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	consumer "dispatch/internal/handlers/kafka-consumer/order_status_changed"
	deliverysvc "dispatch/internal/service/delivery"
)

type Enqueuer interface {
	EnqueueDispatch(ctx context.Context, orderID, merchantID string) error
}

type DeliveryLifecycle interface {
	Complete(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID string) error
}

// StatusHandlerFactory сопоставляет статусу заказа действие движка диспетчеризации.
type StatusHandlerFactory struct {
	enqueuer  Enqueuer
	lifecycle DeliveryLifecycle
}

func NewStatusHandlerFactory(enqueuer Enqueuer, lifecycle DeliveryLifecycle) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		enqueuer:  enqueuer,
		lifecycle: lifecycle,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (consumer.ExecuteFn, error) {
	switch status {
	case entities.OrderReadyForPickup:
		return f.readyHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", consumer.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) readyHandler(ctx context.Context, orderID, merchantID string) error {
	err := f.enqueuer.EnqueueDispatch(ctx, orderID, merchantID)
	if err != nil {
		return fmt.Errorf("enqueue dispatch for ready order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderID, _ string) error {
	err := f.lifecycle.Complete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("complete delivery for order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID, _ string) error {
	err := f.lifecycle.Cancel(ctx, orderID)
	if err != nil {
		// заказ мог быть отменён до назначения или дойти до терминального
		// состояния раньше события — это не повод перечитывать сообщение
		if errors.Is(err, deliverysvc.ErrOrderStateChanged) {
			return nil
		}
		return fmt.Errorf("cancel delivery for order %s: %w", orderID, err)
	}
	return nil
}
