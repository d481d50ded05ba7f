package service

import "errors"

// Ожидаемые бизнес-ошибки
var (
	ErrSlotTaken        = errors.New("slot is already booked")
	ErrInvalidSlot      = errors.New("invalid slot id")
	ErrInvalidDate      = errors.New("invalid date")
	ErrOutsideHorizon   = errors.New("date is outside the booking horizon")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSimulatedBooking = errors.New("simulated bookings cannot be cancelled")
	ErrInquiryNotFound  = errors.New("inquiry not found")
)
