package repository

import "errors"

var (
	// ErrRouteNotFound indicates no route record exists with the given ID
	ErrRouteNotFound = errors.New("route not found")

	// ErrBookingNotFound indicates no booking exists with the given ID
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotificationNotFound indicates no notification exists with the given ID
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInsufficientBalance indicates a debit larger than the wallet balance
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrRoutePathNotFound indicates no map coordinates exist for the route
	ErrRoutePathNotFound = errors.New("route path not found")
)
