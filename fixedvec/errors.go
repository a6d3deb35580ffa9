package fixedvec

import (
	"errors"

	"github.com/artem-zyktin/fixed-vector/internal/buf"
)

var (
	// ErrZeroCapacity indicates a construction request for fewer than one slot.
	ErrZeroCapacity = errors.New("fixedvec: capacity must be positive")

	// ErrAllocation indicates that the allocator could not provide a block.
	ErrAllocation = errors.New("fixedvec: allocation failed")

	// ErrFull is the panic value (wrapped) of a push onto a full vector.
	ErrFull = errors.New("fixedvec: vector is full")

	// ErrOutOfRange is the panic value (wrapped) of checked access past the live elements.
	ErrOutOfRange = buf.ErrIndex

	// ErrInvalidated is the panic value of a range loop whose vector was
	// structurally modified by the loop body.
	ErrInvalidated = errors.New("fixedvec: vector modified during iteration")
)
