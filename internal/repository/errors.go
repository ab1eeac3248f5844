package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrSlotTaken is returned by the transactional appointment writes when
	// another non-canceled appointment already occupies the slot.
	ErrSlotTaken = errors.New("slot already booked")
)
