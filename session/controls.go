package session

import (
	"github.com/dh1tw/opusbox/audiocodec"
)

// EncoderControl sends a control request to the encoder. A negative status
// of the codec is returned as *CodecError matching ErrEncoderCTL.
func (s *Session) EncoderControl(id, value int) error {
	if !s.mu.TryLock() {
		return ErrSessionBusy
	}
	defer s.mu.Unlock()

	if err := s.usable(); err != nil {
		return err
	}
	return s.encoderCtl(id, value)
}

// DecoderControl sends a control request to the decoder. A negative status
// of the codec is returned as *CodecError matching ErrDecoderCTL.
func (s *Session) DecoderControl(id, value int) error {
	if !s.mu.TryLock() {
		return ErrSessionBusy
	}
	defer s.mu.Unlock()

	if err := s.usable(); err != nil {
		return err
	}

	if err := ValidateControl(id); err != nil {
		return err
	}

	if res := s.codec.DecoderCtl(s.dec, id, value); res < 0 {
		s.options.Metrics.codecError("decoder_ctl", res)
		return newCodecError(ErrDecoderCTL, res)
	}
	return nil
}

// encoderCtl must be called with the lock held.
func (s *Session) encoderCtl(id, value int) error {
	if err := ValidateControl(id); err != nil {
		return err
	}

	if res := s.codec.EncoderCtl(s.enc, id, value); res < 0 {
		s.options.Metrics.codecError("encoder_ctl", res)
		return newCodecError(ErrEncoderCTL, res)
	}
	return nil
}

// SetBitrate sets the encoder bitrate in bit/s. audiocodec.BitrateAuto and
// audiocodec.BitrateMax are accepted as well.
func (s *Session) SetBitrate(bitrate int) error {
	return s.EncoderControl(audiocodec.SetBitrateRequest, bitrate)
}

// SetComplexity sets the computational complexity of the encoder [0...10].
func (s *Session) SetComplexity(complexity int) error {
	return s.EncoderControl(audiocodec.SetComplexityRequest, complexity)
}

// SetMaxBandwidth sets the maximum bandpass of the encoder.
func (s *Session) SetMaxBandwidth(bandwidth int) error {
	return s.EncoderControl(audiocodec.SetMaxBandwidthRequest, bandwidth)
}

// SetInBandFEC enables or disables in-band forward error correction.
func (s *Session) SetInBandFEC(enabled bool) error {
	return s.EncoderControl(audiocodec.SetInbandFECRequest, *boolToInt(&enabled))
}

// SetPacketLossPerc sets the expected packet loss in percent.
func (s *Session) SetPacketLossPerc(perc int) error {
	return s.EncoderControl(audiocodec.SetPacketLossPercRequest, perc)
}

// SetDTX enables or disables discontinuous transmission.
func (s *Session) SetDTX(enabled bool) error {
	return s.EncoderControl(audiocodec.SetDTXRequest, *boolToInt(&enabled))
}

// SetGain sets the decoder output gain in Q8 dB units. The opus backend
// does not support it and reports Unimplemented (ErrDecoderCTL).
func (s *Session) SetGain(gain int) error {
	return s.DecoderControl(audiocodec.SetGainRequest, gain)
}

// ResetEncoder resets the encoder state, e.g. after a discontinuity.
func (s *Session) ResetEncoder() error {
	return s.EncoderControl(audiocodec.ResetStateRequest, 0)
}

// ResetDecoder resets the decoder state, e.g. after packet loss.
func (s *Session) ResetDecoder() error {
	return s.DecoderControl(audiocodec.ResetStateRequest, 0)
}
