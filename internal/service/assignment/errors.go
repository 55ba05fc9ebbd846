package assignment

import "errors"

var (
	// сентинелы для маппинга из репозиториев
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderStateChanged    = errors.New("order state changed concurrently")
	ErrOrderAlreadyAssigned = errors.New("order already has an active delivery")
	ErrAvailabilityConflict = errors.New("driver availability state changed concurrently")
)
