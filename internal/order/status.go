package order

import "strings"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// ParseStatus maps a request string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ParsePaymentStatus maps a request string to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(s)) {
	case PaymentPending:
		return PaymentPending, nil
	case PaymentCompleted:
		return PaymentCompleted, nil
	case PaymentFailed:
		return PaymentFailed, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

// CanTransition reports whether the fulfillment status may move from one
// state to the next: pending → confirmed → shipped → delivered, with
// pending|confirmed → cancelled as the only deviation.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered
	default:
		return false
	}
}

// CanCancel reports whether an order in the given status may still be
// cancelled by its owner.
func CanCancel(from Status) bool {
	return from == StatusPending || from == StatusConfirmed
}
