package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents one reservation on an owner's property.
type Booking struct {
	// ID is the booking reference (e.g. "HST-1042").
	ID string

	// PropertyID is the property the guest stays at.
	PropertyID string

	// CheckIn is the arrival date in the property's local calendar.
	// It decides which settlement month the booking belongs to.
	// The zero value means the stored date could not be parsed.
	CheckIn time.Time

	// Status is the reservation state. Cancelled bookings never
	// contribute to revenue or commission.
	Status BookingStatus

	// TotalAmount is the gross booking value.
	TotalAmount decimal.Decimal

	// CommissionAmount is Hostizzy's cut of this booking, attributed to the
	// booking regardless of when it is paid.
	CommissionAmount decimal.Decimal
}

// IsCancelled reports whether the booking is excluded from aggregation.
func (b Booking) IsCancelled() bool {
	return b.Status == BookingCancelled
}
