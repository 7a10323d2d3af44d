// internal/domain/order/status.go
package order

import "errors"

// ErrIllegalStatusTransition is returned when a requested status change
// is not allowed by the transition table. The order's status is left
// unchanged.
var ErrIllegalStatusTransition = errors.New("illegal order status transition")

// validTransitions is the full status machine. Shipped and delivered
// orders can no longer be cancelled; delivered and cancelled are
// terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {
		OrderStatusConfirmed,
		OrderStatusCancelled,
	},
	OrderStatusConfirmed: {
		OrderStatusProcessing,
		OrderStatusCancelled,
	},
	OrderStatusProcessing: {
		OrderStatusShipped,
		OrderStatusCancelled,
	},
	OrderStatusShipped: {
		OrderStatusDelivered,
	},
}

// CanTransition reports whether the status machine allows moving from
// one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition validates a requested status change and returns the
// resulting status. On rejection the current status is returned
// together with ErrIllegalStatusTransition. The machine only accepts or
// rejects; it never schedules transitions itself.
func Transition(from, to OrderStatus) (OrderStatus, error) {
	if !CanTransition(from, to) {
		return from, ErrIllegalStatusTransition
	}
	return to, nil
}
