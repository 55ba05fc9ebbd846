package delivery

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Lifecycle завершает доставки. Резервирование принадлежит транзактору
// назначения; здесь только обратная сторона инварианта: терминальная доставка
// возвращает водителю доступность.
type Lifecycle struct {
	repository Repository
	drivers    DriverRepository
	orders     OrderRepository
	txManager  TxManager
}

func New(repository Repository, drivers DriverRepository, orders OrderRepository, txManager TxManager) *Lifecycle {
	return &Lifecycle{
		repository: repository,
		drivers:    drivers,
		orders:     orders,
		txManager:  txManager,
	}
}

// Complete закрывает активную доставку заказа, освобождает водителя и переводит
// заказ в completed одной транзакцией.
func (l *Lifecycle) Complete(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	return l.finish(ctx, orderID, entities.DeliveryCompleted, entities.OrderCompleted)
}

// Cancel отменяет заказ. Если активная доставка существует, она закрывается и
// водитель освобождается; если назначения ещё не было, достаточно перевести заказ
// в cancelled — проверка предусловий транзактора отбросит заявку в очереди.
func (l *Lifecycle) Cancel(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	err := l.finish(ctx, orderID, entities.DeliveryCancelled, entities.OrderCancelled)
	if errors.Is(err, ErrDeliveryNotFound) {
		if err := l.orders.UpdateStatus(ctx, orderID, entities.OrderCancelled); err != nil {
			return fmt.Errorf("cancel unassigned order: %w", err)
		}
		return nil
	}
	return err
}

func (l *Lifecycle) finish(ctx context.Context, orderID string, deliveryStatus entities.DeliveryStatusType, orderStatus entities.OrderStatusType) error {
	return l.txManager.Do(ctx, func(ctx context.Context) error {
		finished, err := l.repository.FinishActiveByOrderID(ctx, orderID, deliveryStatus)
		if err != nil {
			return fmt.Errorf("finish delivery: %w", err)
		}

		err = l.drivers.SetAvailability(ctx, finished.DriverID, false, true)
		if err != nil {
			return fmt.Errorf("release driver %d: %w", finished.DriverID, err)
		}

		if err := l.orders.UpdateStatus(ctx, orderID, orderStatus); err != nil {
			return fmt.Errorf("transition order: %w", err)
		}

		return nil
	})
}
