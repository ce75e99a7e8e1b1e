package session

import (
	"errors"
	"fmt"

	"github.com/dh1tw/opusbox/arena"
	"github.com/dh1tw/opusbox/audiocodec"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCodecInitFailed  = errors.New("codec init failed")
	ErrNotReady         = errors.New("codec not ready")
	ErrAlreadyDestroyed = errors.New("session already destroyed")
	ErrSessionBusy      = errors.New("session busy")

	// arena misuse
	ErrCapacityExceeded = arena.ErrCapacityExceeded
	ErrInvalidLength    = arena.ErrInvalidLength
	ErrUseAfterRelease  = arena.ErrUseAfterRelease

	// failures reported by the codec; see CodecError
	ErrEncode     = errors.New("Encode error")
	ErrDecode     = errors.New("Decode error")
	ErrEncoderCTL = errors.New("Encoder CTL error")
	ErrDecoderCTL = errors.New("Decoder CTL error")
)

// ParamError is returned when a parameter is outside of the domain the
// codec accepts. It matches ErrInvalidArgument.
type ParamError struct {
	Param string
	Value int
	Msg   string
}

func (p *ParamError) Error() string {
	return fmt.Sprintf("%v %d: %v", p.Param, p.Value, p.Msg)
}

func (p *ParamError) Unwrap() error {
	return ErrInvalidArgument
}

// CodecError is returned when the codec reports a negative status code.
// It matches the sentinel of the failed operation (ErrEncode, ErrDecode,
// ErrEncoderCTL or ErrDecoderCTL) and the audiocodec.Status it carries.
type CodecError struct {
	Op     error
	Status audiocodec.Status
}

func newCodecError(op error, code int) *CodecError {
	return &CodecError{Op: op, Status: audiocodec.Status(code)}
}

// Category returns the failure class reported by the codec.
func (e *CodecError) Category() audiocodec.Category {
	return e.Status.Category()
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Status)
}

func (e *CodecError) Unwrap() []error {
	return []error{e.Op, e.Status}
}
