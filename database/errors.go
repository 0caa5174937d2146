package database

import "errors"

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already used")
	// ErrInvalidSlot is returned when a slot number is outside [1,10].
	ErrInvalidSlot = errors.New("slot number must be between 1 and 10")
	// ErrSlotOccupied is returned when a date/slot pair already holds the
	// maximum number of parallel conferences.
	ErrSlotOccupied = errors.New("no free track left in this slot")
	// ErrConferenceFull is returned when a conference has reached its member capacity.
	ErrConferenceFull = errors.New("conference is full")
	// ErrAlreadyJoined is returned when a user joins a conference twice.
	ErrAlreadyJoined = errors.New("user already joined this conference")
	// ErrNotJoined is returned when a user leaves a conference they never joined.
	ErrNotJoined = errors.New("user has not joined this conference")
)
