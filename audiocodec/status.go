package audiocodec

import (
	"errors"
	"fmt"
)

// Category is the failure class of a negative status code returned by a
// Codec.
type Category int

const (
	BadArgument Category = iota + 1
	BufferTooSmall
	InternalError
	InvalidPacket
	Unimplemented
	InvalidState
	AllocationFailure
	UnknownCodecError
)

// Status codes of the codec boundary.
const (
	StatusOK                = 0
	StatusBadArg            = -1
	StatusBufferTooSmall    = -2
	StatusInternalError     = -3
	StatusInvalidPacket     = -4
	StatusUnimplemented     = -5
	StatusInvalidState      = -6
	StatusAllocationFailure = -7
)

func (c Category) String() string {
	switch c {
	case BadArgument:
		return "Bad argument"
	case BufferTooSmall:
		return "Buffer too small"
	case InternalError:
		return "Internal error"
	case InvalidPacket:
		return "Invalid packet"
	case Unimplemented:
		return "Unimplemented"
	case InvalidState:
		return "Invalid state"
	case AllocationFailure:
		return "Memory allocation fail"
	}
	return "Unknown codec error"
}

// Lookup maps a negative status code onto its Category. Codes outside of
// the known range map to UnknownCodecError.
func Lookup(code int) Category {
	switch code {
	case StatusBadArg:
		return BadArgument
	case StatusBufferTooSmall:
		return BufferTooSmall
	case StatusInternalError:
		return InternalError
	case StatusInvalidPacket:
		return InvalidPacket
	case StatusUnimplemented:
		return Unimplemented
	case StatusInvalidState:
		return InvalidState
	case StatusAllocationFailure:
		return AllocationFailure
	}
	return UnknownCodecError
}

// Status is a raw negative status code returned from the codec boundary.
type Status int

// Category returns the failure class of the status code.
func (s Status) Category() Category {
	return Lookup(int(s))
}

func (s Status) Error() string {
	if s.Category() == UnknownCodecError {
		return fmt.Sprintf("%v (%d)", s.Category(), int(s))
	}
	return s.Category().String()
}

// StatusFromError extracts the status code carried by err. Errors which do
// not carry a status are reported as StatusBadArg.
func StatusFromError(err error) int {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.As(err, &s) {
		return int(s)
	}
	return StatusBadArg
}
