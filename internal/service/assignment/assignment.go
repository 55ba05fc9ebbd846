package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

type Transactor struct {
	orders          OrderRepository
	drivers         DriverRepository
	deliveries      DeliveryRepository
	locator         Locator
	txManager       TxManager
	freshnessWindow time.Duration
}

func New(
	orders OrderRepository,
	drivers DriverRepository,
	deliveries DeliveryRepository,
	locator Locator,
	txManager TxManager,
	freshnessWindow time.Duration,
) *Transactor {
	return &Transactor{
		orders:          orders,
		drivers:         drivers,
		deliveries:      deliveries,
		locator:         locator,
		txManager:       txManager,
		freshnessWindow: freshnessWindow,
	}
}

// TryAssign подбирает ближайшего кандидата и атомарно резервирует его под заказ.
// Бизнес-исходы возвращаются в Result, ошибка — только инфраструктурная: невалидная
// заявка терминальна, иначе очередь будет гонять её по кругу до бесконечности.
func (t *Transactor) TryAssign(ctx context.Context, orderID string) (*Result, error) {
	if !isValidOrderID(orderID) {
		return &Result{Outcome: OutcomeNotDispatchable}, nil
	}

	order, err := t.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return &Result{Outcome: OutcomeNotDispatchable}, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !order.Status.Dispatchable() {
		return &Result{Outcome: OutcomeNotDispatchable}, nil
	}

	pickup := geo.Point{Lat: order.PickupLat, Lon: order.PickupLon}
	if !pickup.Valid() {
		// битые координаты мерчанта, повтор не поможет
		return &Result{Outcome: OutcomeNotDispatchable}, nil
	}

	candidates, err := t.locator.FindCandidates(ctx, pickup, t.freshnessWindow)
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	if len(candidates) == 0 {
		return &Result{Outcome: OutcomeNoCandidate}, nil
	}

	conflicts := 0
	for _, candidate := range candidates {
		err := t.reserve(ctx, order.ID, candidate.DriverID)
		switch {
		case err == nil:
			return &Result{Outcome: OutcomeAssigned, DriverID: candidate.DriverID}, nil

		case errors.Is(err, ErrAvailabilityConflict):
			// водителя увёл конкурирующий воркер, пробуем следующего
			conflicts++

		case errors.Is(err, ErrOrderAlreadyAssigned), errors.Is(err, ErrOrderStateChanged):
			// заказ изменился под нами: уже назначен или отменён
			return &Result{Outcome: OutcomeNotDispatchable}, nil

		default:
			return nil, fmt.Errorf("reserve driver %d for order %s: %w", candidate.DriverID, orderID, err)
		}
	}

	if conflicts > 0 {
		return &Result{Outcome: OutcomeConflict}, nil
	}
	return &Result{Outcome: OutcomeNoCandidate}, nil
}

// reserve выполняет резервирование одной транзакцией: условный перевод водителя
// в занятые, создание доставки и условный перевод заказа в assigned.
// Любой отказ условия откатывает всё целиком.
func (t *Transactor) reserve(ctx context.Context, orderID string, driverID int64) error {
	return t.txManager.Do(ctx, func(ctx context.Context) error {
		if err := t.drivers.SetAvailability(ctx, driverID, true, false); err != nil {
			return fmt.Errorf("flip driver availability: %w", err)
		}

		if _, err := t.deliveries.Create(ctx, orderID, driverID); err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		err := t.orders.UpdateStatusAndDriver(ctx, orderID, entities.OrderReadyForPickup, entities.OrderAssigned, driverID)
		if err != nil {
			return fmt.Errorf("transition order to assigned: %w", err)
		}

		return nil
	})
}
