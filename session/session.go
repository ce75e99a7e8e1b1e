// Package session manages codec sessions: one encoder and one decoder bound
// to a fixed samplerate and channel count, together with the buffer arena
// the codec reads from and writes into.
//
// A Session must not be used concurrently. Calls which overlap with another
// call on the same Session fail with ErrSessionBusy. Independent sessions
// can be used from different goroutines.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dh1tw/opusbox/arena"
	"github.com/dh1tw/opusbox/audio"
	"github.com/dh1tw/opusbox/audiocodec"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

const (
	// MaxFrameSize is the largest frame in samples per channel (60ms @ 48kHz).
	MaxFrameSize = arena.MaxFrameSize
	// MaxPacketSize is the largest packet in bytes which can be encoded
	// or decoded.
	MaxPacketSize = arena.MaxPacketSize
)

// State is the lifecycle state of a Session.
type State int

const (
	Uninitialized State = iota
	Ready
	Destroyed
)

const (
	stateUninitialized = "uninitialized"
	stateReady         = "ready"
	stateDestroyed     = "destroyed"
)

func (s State) String() string {
	switch s {
	case Ready:
		return stateReady
	case Destroyed:
		return stateDestroyed
	}
	return stateUninitialized
}

// Session wraps one encoder and one decoder of a codec together with the
// arena holding their input and output buffers.
type Session struct {
	mu          sync.Mutex
	id          uuid.UUID
	samplerate  int
	channels    int
	application audiocodec.Application
	codec       audiocodec.Codec
	enc         audiocodec.Handle
	dec         audiocodec.Handle
	arena       *arena.Arena
	inPCM       arena.Region
	inPacket    arena.Region
	outPacket   arena.Region
	outPCM      arena.Region
	state       *fsm.FSM
	options     Options
}

var (
	_ audiocodec.Encoder = (*Session)(nil)
	_ audiocodec.Decoder = (*Session)(nil)
)

// New is the constructor method for a Session. The parameters are validated
// before anything is allocated. The runtime must be ready, otherwise
// ErrNotReady is returned.
func New(rt *Runtime, samplerate, channels int, app audiocodec.Application, opts ...Option) (*Session, error) {

	if err := ValidateSamplingRate(samplerate); err != nil {
		return nil, err
	}
	if err := ValidateChannels(channels); err != nil {
		return nil, err
	}
	if err := ValidateApplication(app); err != nil {
		return nil, err
	}

	codec, err := rt.Codec()
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrCodecInitFailed, err)
	}

	s := &Session{
		id:          uuid.New(),
		samplerate:  samplerate,
		channels:    channels,
		application: app,
		codec:       codec,
		options: Options{
			Registry: DefaultRegistry,
		},
	}

	for _, option := range opts {
		option(&s.options)
	}

	s.state = fsm.NewFSM(
		stateUninitialized,
		fsm.Events{
			{Name: "ready", Src: []string{stateUninitialized}, Dst: stateReady},
			{Name: "destroy", Src: []string{stateUninitialized, stateReady}, Dst: stateDestroyed},
		},
		fsm.Callbacks{},
	)

	a, err := arena.New(codec, arena.PCMLayout(channels))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCodecInitFailed, err)
	}
	s.arena = a
	s.inPCM = a.Region(arena.InputPCM)
	s.inPacket = a.Region(arena.InputPacket)
	s.outPacket = a.Region(arena.OutputPacket)
	s.outPCM = a.Region(arena.OutputPCM)

	enc, err := codec.CreateEncoder(samplerate, channels, app)
	if err != nil {
		s.teardown()
		return nil, fmt.Errorf("%w: %w", ErrCodecInitFailed, err)
	}
	s.enc = enc

	dec, err := codec.CreateDecoder(samplerate, channels)
	if err != nil {
		s.teardown()
		return nil, fmt.Errorf("%w: %w", ErrCodecInitFailed, err)
	}
	s.dec = dec

	if err := s.applyEncoderOptions(); err != nil {
		s.teardown()
		return nil, err
	}

	if err := s.state.Event(context.Background(), "ready"); err != nil {
		s.teardown()
		return nil, fmt.Errorf("%w: %w", ErrCodecInitFailed, err)
	}

	if s.options.Registry != nil {
		s.options.Registry.add(s)
	}
	s.options.Metrics.sessionCreated()

	return s, nil
}

// applyEncoderOptions sends the initial encoder settings to the codec.
func (s *Session) applyEncoderOptions() error {
	o := s.options

	settings := []struct {
		id    int
		value *int
	}{
		{audiocodec.SetBitrateRequest, o.Bitrate},
		{audiocodec.SetComplexityRequest, o.Complexity},
		{audiocodec.SetMaxBandwidthRequest, o.MaxBandwidth},
		{audiocodec.SetInbandFECRequest, boolToInt(o.InBandFEC)},
		{audiocodec.SetPacketLossPercRequest, o.PacketLossPerc},
		{audiocodec.SetDTXRequest, boolToInt(o.DTX)},
	}

	for _, setting := range settings {
		if setting.value == nil {
			continue
		}
		if err := s.encoderCtl(setting.id, *setting.value); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b *bool) *int {
	if b == nil {
		return nil
	}
	v := 0
	if *b {
		v = 1
	}
	return &v
}

// teardown releases the codec handles and the arena and moves the session
// into the Destroyed state. All steps are executed, failures are joined.
func (s *Session) teardown() error {
	var errs []error

	if s.enc != nil {
		s.codec.Destroy(s.enc)
		s.enc = nil
	}
	if s.dec != nil {
		s.codec.Destroy(s.dec)
		s.dec = nil
	}
	if s.arena != nil {
		if err := s.arena.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release arena: %w", err))
		}
	}
	if err := s.state.Event(context.Background(), "destroy"); err != nil {
		errs = append(errs, fmt.Errorf("session state: %w", err))
	}

	return errors.Join(errs...)
}

// usable checks that the session accepts encode, decode and CTL calls.
func (s *Session) usable() error {
	switch s.state.Current() {
	case stateReady:
		return nil
	case stateDestroyed:
		return ErrUseAfterRelease
	}
	return ErrNotReady
}

// ID returns the unique id of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the lifecycle state of the session.
func (s *Session) State() State {
	switch s.state.Current() {
	case stateReady:
		return Ready
	case stateDestroyed:
		return Destroyed
	}
	return Uninitialized
}

// SampleRate returns the sampling rate of the session.
func (s *Session) SampleRate() int {
	return s.samplerate
}

// Channels returns the amount of interleaved channels.
func (s *Session) Channels() int {
	return s.channels
}

// Application returns the application mode of the encoder.
func (s *Session) Application() audiocodec.Application {
	return s.application
}

// CodecName returns the name of the codec backing the session.
func (s *Session) CodecName() string {
	return s.codec.Name()
}

// Encode a frame of interleaved s16le PCM samples. frameSize is the amount
// of samples per channel and must correspond to 2.5, 5, 10, 20, 40 or 60ms.
// The returned packet is a copy owned by the caller.
func (s *Session) Encode(pcm []byte, frameSize int) ([]byte, error) {

	if !s.mu.TryLock() {
		return nil, ErrSessionBusy
	}
	defer s.mu.Unlock()

	if err := s.usable(); err != nil {
		return nil, err
	}

	if err := ValidateFrameSize(frameSize, s.samplerate); err != nil {
		return nil, err
	}

	if err := s.arena.Fits(s.inPCM, len(pcm)); err != nil {
		return nil, err
	}

	if expected := frameSize * s.channels * audio.SampleWidth; len(pcm) != expected {
		return nil, &ParamError{
			Param: "pcm length",
			Value: len(pcm),
			Msg:   fmt.Sprintf("%d frames of %d channels require %d bytes", frameSize, s.channels, expected),
		}
	}

	if _, err := s.arena.Write(s.inPCM, pcm); err != nil {
		return nil, err
	}

	in, err := s.arena.Read(s.inPCM, len(pcm))
	if err != nil {
		return nil, err
	}

	out, err := s.arena.Scratch(s.outPacket)
	if err != nil {
		return nil, err
	}

	n := s.codec.Encode(s.enc, in, len(pcm)/audio.SampleWidth, out, frameSize)
	if n < 0 {
		s.options.Metrics.codecError("encode", n)
		return nil, newCodecError(ErrEncode, n)
	}

	packet, err := s.arena.Read(s.outPacket, n)
	if err != nil {
		return nil, err
	}

	s.options.Metrics.encoded(n)

	res := make([]byte, n)
	copy(res, packet)
	return res, nil
}

// Decode a packet into interleaved s16le PCM samples. The returned buffer
// is a copy owned by the caller.
func (s *Session) Decode(packet []byte) ([]byte, error) {

	if !s.mu.TryLock() {
		return nil, ErrSessionBusy
	}
	defer s.mu.Unlock()

	if err := s.usable(); err != nil {
		return nil, err
	}

	if _, err := s.arena.Write(s.inPacket, packet); err != nil {
		return nil, err
	}

	in, err := s.arena.Read(s.inPacket, len(packet))
	if err != nil {
		return nil, err
	}

	out, err := s.arena.Scratch(s.outPCM)
	if err != nil {
		return nil, err
	}

	n := s.codec.Decode(s.dec, in, out)
	if n < 0 {
		s.options.Metrics.codecError("decode", n)
		return nil, newCodecError(ErrDecode, n)
	}

	pcm, err := s.arena.Read(s.outPCM, n*s.channels*audio.SampleWidth)
	if err != nil {
		return nil, err
	}

	s.options.Metrics.decoded()

	res := make([]byte, len(pcm))
	copy(res, pcm)
	return res, nil
}

// Destroy releases the encoder, the decoder and the arena. Destroying a
// session a second time returns ErrAlreadyDestroyed. If a resource could not
// be released the session is destroyed nevertheless and the error returned.
func (s *Session) Destroy() error {

	if !s.mu.TryLock() {
		return ErrSessionBusy
	}
	defer s.mu.Unlock()

	if s.state.Is(stateDestroyed) {
		return ErrAlreadyDestroyed
	}

	err := s.teardown()

	if s.options.Registry != nil {
		s.options.Registry.remove(s.id)
	}
	s.options.Metrics.sessionDestroyed()

	return err
}
